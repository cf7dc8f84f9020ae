// Package workflow groups reusable UI-interaction sequences into named
// suites and executes them against a shared browser session.
//
// A Suite is a declaration table built at package-init time, the closest
// Go equivalent of declaring methods in a class body:
//
//	var Member = workflow.NewSuite("member")
//
//	func init() {
//		Member.Declare("login_with", func(s browser.Capabilities, args ...any) (any, error) {
//			email, password := args[0].(string), args[1].(string)
//			if err := s.Navigate("/member", browser.NavigateOptions{}); err != nil {
//				return nil, err
//			}
//			if err := s.Fill(browser.FillOptions{Selector: "#email", Value: email}); err != nil {
//				return nil, err
//			}
//			if err := s.Fill(browser.FillOptions{Selector: "#password", Value: password}); err != nil {
//				return nil, err
//			}
//			return nil, s.Submit("")
//		})
//	}
//
// Binding the suite to a session yields a Set, the per-scenario instance:
//
//	set := Member.Bind(session)
//	if _, err := set.Call("login_with", "a@b.com", "pw"); err != nil { ... }
//
// Every capability a body invokes lands on the bound session, exactly as
// if the calls had been written inline in the scenario. Bodies declared
// with DeclareWithSet additionally receive the Set itself and can keep
// state across invocations through its attributes (a logged-in flag,
// cached credentials). Errors from capabilities pass out of Call
// unchanged; the package never wraps or recovers them.
package workflow
