package profile

import "fmt"

// Python: def and class only. No interface concept, so Interface stays nil
// and interface lookups on .py files fail before any query runs.
var pythonProfile = &Profile{
	Grammar:  "python",
	Function: pythonFunction,
	Class:    pythonClass,
	Method:   pythonMethod,
	List:     pythonList,
}

func pythonFunction(name string) string {
	return fmt.Sprintf(`(function_definition
  name: (identifier) @match_name
  (#eq? @match_name "%s")
) @result`, name)
}

func pythonClass(name string) string {
	return fmt.Sprintf(`(class_definition
  name: (identifier) @match_name
  (#eq? @match_name "%s")
) @result`, name)
}

func pythonMethod(owner, member string) string {
	return fmt.Sprintf(`(class_definition
  name: (identifier) @owner_name
  (#eq? @owner_name "%s")
  body: (block
    (function_definition
      name: (identifier) @match_name
      (#eq? @match_name "%s")
    ) @result
  )
)`, owner, member)
}

const pythonList = `(function_definition name: (identifier) @func_name) @function
(class_definition name: (identifier) @class_name) @class`
