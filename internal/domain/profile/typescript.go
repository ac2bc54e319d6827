package profile

import "fmt"

// The whole JS family shares the TypeScript grammar: it parses plain JS and
// module variants fine, and interface lookups stay meaningful on .ts files
// without a second profile. TSX gets its own grammar because tag syntax
// changes the tree shape; the templates are identical.
var typescriptProfile = &Profile{
	Grammar:   "typescript",
	Function:  tsFunction,
	Class:     tsClass,
	Interface: tsInterface,
	Method:    tsMethod,
	List:      tsList,
}

var tsxProfile = &Profile{
	Grammar:   "tsx",
	Function:  tsFunction,
	Class:     tsClass,
	Interface: tsInterface,
	Method:    tsMethod,
	List:      tsList,
}

// tsFunction matches function declarations, arrow functions bound to a
// top-level const/let, and the exported variants of both.
func tsFunction(name string) string {
	return fmt.Sprintf(`[
  (function_declaration
    name: (identifier) @match_name
    (#eq? @match_name "%[1]s")
  ) @result
  (lexical_declaration
    (variable_declarator
      name: (identifier) @match_name
      (#eq? @match_name "%[1]s")
      value: (arrow_function)
    )
  ) @result
  (export_statement
    declaration: (function_declaration
      name: (identifier) @match_name
      (#eq? @match_name "%[1]s")
    )
  ) @result
  (export_statement
    declaration: (lexical_declaration
      (variable_declarator
        name: (identifier) @match_name
        (#eq? @match_name "%[1]s")
        value: (arrow_function)
      )
    )
  ) @result
]`, name)
}

func tsClass(name string) string {
	return fmt.Sprintf(`[
  (class_declaration
    name: (type_identifier) @match_name
    (#eq? @match_name "%[1]s")
  ) @result
  (export_statement
    declaration: (class_declaration
      name: (type_identifier) @match_name
      (#eq? @match_name "%[1]s")
    )
  ) @result
]`, name)
}

func tsInterface(name string) string {
	return fmt.Sprintf(`[
  (interface_declaration
    name: (type_identifier) @match_name
    (#eq? @match_name "%[1]s")
  ) @result
  (export_statement
    declaration: (interface_declaration
      name: (type_identifier) @match_name
      (#eq? @match_name "%[1]s")
    )
  ) @result
]`, name)
}

func tsMethod(owner, member string) string {
	return fmt.Sprintf(`(class_declaration
  name: (type_identifier) @owner_name
  (#eq? @owner_name "%s")
  body: (class_body
    (method_definition
      name: (property_identifier) @match_name
      (#eq? @match_name "%s")
    ) @result
  )
)`, owner, member)
}

const tsList = `(function_declaration name: (identifier) @func_name) @function
(class_declaration name: (type_identifier) @class_name) @class
(interface_declaration name: (type_identifier) @interface_name) @interface
(lexical_declaration (variable_declarator name: (identifier) @var_name value: (arrow_function))) @arrow_func`
