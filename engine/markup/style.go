package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/draftml/document"
)

// StyleAttribute assembles the value of a style attribute from block data.
// Every property with a non-empty value contributes "prop:value;", in the
// order of the data. Empty values are nil, "", false and 0.
//
// Each declaration must parse as exactly one CSS declaration. Values which
// would break out of the declaration (e.g., containing ';' or '"') are dropped.
func StyleAttribute(data *document.BlockData) string {
	var b strings.Builder
	data.Each(func(prop string, value interface{}) {
		v, ok := cssValue(value)
		if !ok {
			return
		}
		if !wellFormed(prop, v) {
			tracer().Errorf("dropping style declaration %s:%s", prop, v)
			return
		}
		b.WriteString(prop)
		b.WriteByte(':')
		b.WriteString(v)
		b.WriteByte(';')
	})
	return b.String()
}

func cssValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "true", v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), v != 0
	case int:
		return strconv.Itoa(v), v != 0
	}
	return fmt.Sprint(value), true
}

func wellFormed(prop, value string) bool {
	if strings.ContainsAny(prop+value, `"<>`) {
		return false
	}
	decls, err := parser.ParseDeclarations(prop + ":" + value)
	if err != nil || len(decls) != 1 {
		return false
	}
	return strings.EqualFold(decls[0].Property, strings.TrimSpace(prop))
}
