package model

// Token is a GitHub bearer credential. Values of this type are redacted from logs.
type Token string

// String implements fmt.Stringer
func (t Token) String() string {
	return string(t)
}
