package types

// YAML marshalling for the closed enums, so a dumped FontConfig reads in
// the same text forms the rule files use.

func (q TestQual) MarshalYAML() (interface{}, error)       { return q.String(), nil }
func (t PropertyTarget) MarshalYAML() (interface{}, error) { return t.String(), nil }
func (c TestCompare) MarshalYAML() (interface{}, error)    { return c.String(), nil }
func (m EditMode) MarshalYAML() (interface{}, error)       { return m.String(), nil }
func (b EditBinding) MarshalYAML() (interface{}, error)    { return b.String(), nil }
func (m MatchTarget) MarshalYAML() (interface{}, error)    { return m.String(), nil }
func (p DirPrefix) MarshalYAML() (interface{}, error)      { return p.String(), nil }
func (c Constant) MarshalYAML() (interface{}, error)       { return c.String(), nil }
func (o ListOp) MarshalYAML() (interface{}, error)         { return o.String(), nil }
func (o UnaryOp) MarshalYAML() (interface{}, error)        { return o.String(), nil }
func (o BinaryOp) MarshalYAML() (interface{}, error)       { return o.String(), nil }
func (o TernaryOp) MarshalYAML() (interface{}, error)      { return o.String(), nil }
