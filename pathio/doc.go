// Package pathio attaches filesystem paths to errors at the point of failure.
//
// A failing operation deep in a call chain usually reports only its bare
// cause ("no such file or directory"). Wrapping the result with the path that
// was in scope yields a *PathError whose message reads "<path>: <cause>" and
// whose Unwrap returns the original error untouched:
//
//	data, err := pathio.Apply(name, os.ReadFile)
//	if err != nil {
//	    return err // "config.yaml: no such file or directory"
//	}
//
// Helpers exist for every shape of call site: Wrap for a value/error pair
// already in hand, Call for a closure, Apply for functions taking the path,
// CallContext for context-aware operations and All for fanning out over
// many paths at once.
package pathio
