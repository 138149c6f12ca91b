package docs

import (
	"fmt"
	"strings"
)

// Kind distinguishes documented member kinds.
type Kind byte

const (
	KindMethod   Kind = 'M'
	KindType     Kind = 'T'
	KindField    Kind = 'F'
	KindProperty Kind = 'P'
	KindEvent    Kind = 'E'
)

func (k Kind) valid() bool {
	switch k {
	case KindMethod, KindType, KindField, KindProperty, KindEvent:
		return true
	default:
		return false
	}
}

// Key is a canonical member key such as "M:Ns.Type.Member".
type Key string

// Kind returns the key's kind prefix.
func (k Key) Kind() Kind {
	if len(k) == 0 {
		return 0
	}
	return Kind(k[0])
}

// Name returns the dotted full name after the kind prefix.
func (k Key) Name() string {
	if len(k) < 2 {
		return ""
	}
	return string(k[2:])
}

func (k Key) String() string {
	return string(k)
}

// TypeRef identifies the type that declares a set of commands.
type TypeRef struct {
	Namespace string
	Name      string
}

// FullName returns Namespace.Name, or just Name without a namespace.
func (t TypeRef) FullName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

func (t TypeRef) String() string {
	return t.FullName()
}

// NewKey builds a key from a kind and a dotted name.
func NewKey(kind Kind, name string) Key {
	return Key(string(kind) + ":" + name)
}

// TypeKey returns the key documenting the type itself.
func TypeKey(owner TypeRef) Key {
	return NewKey(KindType, owner.FullName())
}

// MemberKey returns the method key for member declared on owner.
func MemberKey(owner TypeRef, member string) Key {
	return NewKey(KindMethod, owner.FullName()+"."+member)
}

// ParseKey validates s and returns it as a Key. A trailing parameter
// signature, as emitted for methods with arguments, is dropped:
// "M:Ns.T.Add(System.Int32)" becomes "M:Ns.T.Add".
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || s[1] != ':' {
		return "", fmt.Errorf("invalid member key %q", s)
	}

	kind := Kind(s[0])
	if !kind.valid() {
		return "", fmt.Errorf("invalid member key %q: unknown kind %q", s, string(kind))
	}

	name := s[2:]
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		name = name[:idx]
	}

	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return "", fmt.Errorf("invalid member key %q: empty name segment", s)
		}
	}

	return NewKey(kind, name), nil
}
