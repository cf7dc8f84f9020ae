// Package browser provides the Playwright-backed session layer that
// workflow bodies drive.
//
// The package is built around three core concepts:
//
// 1. Capabilities: the narrow interface of page operations a workflow body
// is written against (navigate, click, fill, submit, wait, extract, search)
//
// 2. Session: a live Playwright browser instance implementing Capabilities,
// with its context, page, and navigation constraints
//
// 3. SessionManager: registry owning the Playwright runtime and all named
// sessions, including their lifecycle and idle cleanup
//
// Workflow code never constructs Playwright objects directly; it receives a
// Capabilities value and calls its methods. Tests substitute a Recorder,
// which implements the same interface and records every call in order.
package browser
