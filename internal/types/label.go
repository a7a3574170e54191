package types

import (
	"strconv"
	"strings"
)

// Label returns a user-friendly label for a TypeID.
func Label(typesIn *Interner, id TypeID) string {
	return labelDepth(typesIn, id, 0)
}

func labelDepth(typesIn *Interner, id TypeID, depth int) string {
	if id == NoTypeID || typesIn == nil {
		return "?"
	}
	if depth > 6 {
		return "..."
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindVoid, KindInt, KindChar, KindBool, KindNull:
		return tt.Kind.String()
	case KindArray:
		var sb strings.Builder
		sb.WriteString("array of ")
		sb.WriteString(labelDepth(typesIn, tt.Elem, depth+1))
		if tt.Count != ArrayDynamicLength {
			sb.WriteString(" of length ")
			sb.WriteString(strconv.FormatUint(uint64(tt.Count), 10))
		}
		return sb.String()
	case KindRecord:
		if info := typesIn.recordInfo(id); info != nil && info.Name != "" {
			return "record " + info.Name
		}
		return "record"
	case KindAlias:
		if info := typesIn.aliasInfo(id); info != nil {
			return info.Name
		}
	}
	return "?"
}
