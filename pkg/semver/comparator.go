package semver

import "fmt"

// Op is a comparator operator.
type Op string

const (
	OpEq  Op = "="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpNeq Op = "!="
)

// Comparator is a single operator/version pair, e.g. ">=1.2.3". The empty
// operator is treated as OpEq, matching npm's bare-version shorthand.
type Comparator struct {
	Op       Op
	Version  Version
	Original string
}

func (c Comparator) String() string {
	if c.Op == OpEq || c.Op == "" {
		return c.Version.String()
	}
	return string(c.Op) + c.Version.String()
}

// Test reports whether v satisfies this single comparator.
func (c Comparator) Test(v Version) bool {
	switch c.Op {
	case OpLt:
		return Lt(v, c.Version)
	case OpLte:
		return Lte(v, c.Version)
	case OpGt:
		return Gt(v, c.Version)
	case OpGte:
		return Gte(v, c.Version)
	case OpNeq:
		return Neq(v, c.Version)
	default:
		return Eq(v, c.Version)
	}
}

func (c Comparator) GoString() string {
	return fmt.Sprintf("Comparator{%s}", c.String())
}
