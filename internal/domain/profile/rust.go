package profile

import "fmt"

// Rust: no classes, so struct and enum items both answer class lookups.
// Traits answer interface lookups; methods live in impl blocks.
var rustProfile = &Profile{
	Grammar:   "rust",
	Function:  rustFunction,
	Class:     rustClass,
	Interface: rustTrait,
	Method:    rustMethod,
	List:      rustList,
}

func rustFunction(name string) string {
	return fmt.Sprintf(`(function_item
  name: (identifier) @match_name
  (#eq? @match_name "%s")
) @result`, name)
}

func rustClass(name string) string {
	return fmt.Sprintf(`[
  (struct_item
    name: (type_identifier) @match_name
    (#eq? @match_name "%s")
  ) @result
  (enum_item
    name: (type_identifier) @match_name
    (#eq? @match_name "%s")
  ) @result
]`, name, name)
}

func rustTrait(name string) string {
	return fmt.Sprintf(`(trait_item
  name: (type_identifier) @match_name
  (#eq? @match_name "%s")
) @result`, name)
}

func rustMethod(owner, member string) string {
	return fmt.Sprintf(`(impl_item
  type: (type_identifier) @owner_name
  (#eq? @owner_name "%s")
  body: (declaration_list
    (function_item
      name: (identifier) @match_name
      (#eq? @match_name "%s")
    ) @result
  )
)`, owner, member)
}

const rustList = `(function_item name: (identifier) @func_name) @function
(struct_item name: (type_identifier) @struct_name) @struct
(enum_item name: (type_identifier) @enum_name) @enum
(trait_item name: (type_identifier) @trait_name) @trait
(impl_item type: (type_identifier) @impl_name) @impl
(mod_item name: (identifier) @mod_name) @mod`
