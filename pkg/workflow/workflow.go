package workflow

import (
	"fmt"
	"sync"

	"github.com/entrhq/uiflow/pkg/browser"
	"github.com/entrhq/uiflow/pkg/logging"
)

var (
	pkgLogger  *logging.Logger
	loggerOnce sync.Once
)

// logger returns the shared package logger, created on first use so that
// merely declaring suites or binding sets touches no files.
func logger() *logging.Logger {
	loggerOnce.Do(func() {
		pkgLogger, _ = logging.NewLogger("workflow")
	})
	return pkgLogger
}

// Body is a workflow body. It receives the session capability surface and
// the caller-supplied arguments, and returns whatever the sequence
// produces. Errors are returned to the caller unchanged.
type Body func(s browser.Capabilities, args ...any) (any, error)

// BodyWithSet is a workflow body that additionally receives the owning
// Set as an explicit final parameter, so it can read and mutate instance
// state shared across invocations.
type BodyWithSet func(s browser.Capabilities, set *Set, args ...any) (any, error)

type declaration struct {
	body    Body
	withSet BodyWithSet
}

// Suite is a named table of workflow declarations. Suites are built once,
// at package-init time, and then bound to sessions arbitrarily many times.
type Suite struct {
	name string

	mu     sync.RWMutex
	bodies map[string]declaration
}

// NewSuite creates an empty suite.
func NewSuite(name string) *Suite {
	return &Suite{
		name:   name,
		bodies: make(map[string]declaration),
	}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Declare registers body under name. Re-declaring an existing name
// silently replaces the prior body; the last declaration wins.
func (s *Suite) Declare(name string, body Body) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[name] = declaration{body: body}
}

// DeclareWithSet registers a body that also receives the owning Set.
// The same replace-on-redeclare policy applies, across both forms.
func (s *Suite) DeclareWithSet(name string, body BodyWithSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[name] = declaration{withSet: body}
}

// Declared reports whether name is declared on the suite.
func (s *Suite) Declared(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bodies[name]
	return ok
}

// Workflows returns the declared workflow names, in no particular order.
func (s *Suite) Workflows() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.bodies))
	for name := range s.bodies {
		names = append(names, name)
	}
	return names
}

// Bind constructs a Set holding session. The session is not validated;
// a nil session fails on the first capability call a body forwards to it.
// Multiple Sets may share one session, but only one logical execution
// stream may drive a session at a time.
func (s *Suite) Bind(session browser.Capabilities) *Set {
	return &Set{
		suite:   s,
		session: session,
		attrs:   make(map[string]any),
	}
}

// Set is a suite bound to one session, plus arbitrary caller-defined
// attributes. It is created per test scenario, mutated by successive
// workflow calls, and discarded at scenario end.
type Set struct {
	suite   *Suite
	session browser.Capabilities
	attrs   map[string]any
}

// Session returns the bound session.
func (s *Set) Session() browser.Capabilities {
	return s.session
}

// Suite returns the suite this set was bound from.
func (s *Set) Suite() *Suite {
	return s.suite
}

// Call invokes the declared workflow with the given arguments. The body
// executes against the bound session; its result and error are returned
// unchanged. An unknown name is the one failure owned by this package.
func (s *Set) Call(name string, args ...any) (any, error) {
	s.suite.mu.RLock()
	decl, ok := s.suite.bodies[name]
	s.suite.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("workflow %q not declared in suite %q", name, s.suite.name)
	}

	logger().Debugf("suite %q: invoking %q with %d args", s.suite.name, name, len(args))

	if decl.withSet != nil {
		return decl.withSet(s.session, s, args...)
	}
	return decl.body(s.session, args...)
}

// SetAttr stores a caller-defined attribute on the set.
func (s *Set) SetAttr(key string, value any) {
	s.attrs[key] = value
}

// Attr returns a caller-defined attribute and whether it was present.
func (s *Set) Attr(key string) (any, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// BoolAttr returns the attribute as a bool, false when absent or not a
// bool. Convenient for guard flags such as "logged_in".
func (s *Set) BoolAttr(key string) bool {
	v, ok := s.attrs[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
