package contract

import "fmt"

// Builder accumulates a type's raw declarations during authoring. It is
// append-only: declarations can be added across multiple Declare calls but
// never removed or reordered. Build performs the authoring checks and
// freezes the result into an immutable Contract.
type Builder struct {
	decls []Declaration
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Declare appends the given declarations to the builder, preserving order.
// It returns the builder for chaining.
func (b *Builder) Declare(decls ...Declaration) *Builder {
	b.decls = append(b.decls, decls...)
	return b
}

// Build validates the accumulated declarations and freezes them into a
// Contract. It fails with an *AuthoringError when the declarations are
// malformed: a nameless non-sentinel declaration, the no-parameters sentinel
// combined with anything else, or the same name declared both bare and with
// a default within this one type.
func (b *Builder) Build() (*Contract, error) {
	seen := make(map[string]Declaration, len(b.decls))
	for _, d := range b.decls {
		if d.NoParams {
			if len(b.decls) > 1 {
				return nil, &AuthoringError{Detail: "the no-parameters sentinel must be the sole declaration"}
			}
			continue
		}
		if d.Name == "" {
			return nil, &AuthoringError{Detail: "declaration has no parameter name"}
		}
		if prev, dup := seen[d.Name]; dup {
			if (prev.Default == nil) != (d.Default == nil) {
				return nil, &AuthoringError{
					Detail: fmt.Sprintf("parameter '%s' is declared both bare and with a default", d.Name),
				}
			}
			return nil, &AuthoringError{
				Detail: fmt.Sprintf("parameter '%s' is declared more than once", d.Name),
			}
		}
		seen[d.Name] = d
	}

	frozen := make([]Declaration, len(b.decls))
	copy(frozen, b.decls)
	return &Contract{decls: frozen}, nil
}

// MustBuild is Build that panics on an authoring error. Intended for
// compiled-in widget modules, where a malformed contract is a programming
// mistake caught at registration time.
func (b *Builder) MustBuild() *Contract {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("contract: %v", err))
	}
	return c
}

// Contract is a type's frozen declaration list. It is immutable after Build;
// all accessors return fresh copies.
type Contract struct {
	decls []Declaration
}

// Empty reports whether the contract holds no declarations at all. An empty
// contract places no restriction on construction parameters.
func (c *Contract) Empty() bool {
	return c == nil || len(c.decls) == 0
}

// Declarations returns a copy of the frozen declaration list.
func (c *Contract) Declarations() []Declaration {
	if c == nil {
		return nil
	}
	out := make([]Declaration, len(c.decls))
	copy(out, c.decls)
	return out
}
