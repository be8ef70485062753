package interp

import (
	"reflect"

	yinterp "github.com/traefik/yaegi/interp"
)

// registration is one pending component registration captured while a
// module evaluates. Registrations are committed only after the whole file
// evaluated successfully.
type registration struct {
	uri       string
	component any
}

// exports builds the symbol map injected into every interpreter. Component
// sources import "refract" and call refract.Register at top level; the
// call lands in the pending list owned by the current evaluation.
func exports(pending *[]registration) yinterp.Exports {
	return yinterp.Exports{
		"refract/refract": {
			"Register": reflect.ValueOf(func(uri string, component any) {
				*pending = append(*pending, registration{uri: uri, component: component})
			}),
		},
	}
}
