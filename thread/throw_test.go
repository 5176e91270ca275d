package thread

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ternvm/tern"
)

type fakeMethod struct {
	name string
	sig  string
}

func (m fakeMethod) Name() string      { return m.name }
func (m fakeMethod) Signature() string { return m.sig }

type fakeClass struct {
	desc    string
	hasCtor bool
}

func (c *fakeClass) Descriptor() string { return c.desc }

func (c *fakeClass) NewInstance() (tern.Object, error) {
	return &fakeInstance{class: c}, nil
}

func (c *fakeClass) FindConstructor(sig string) (tern.Method, bool) {
	if c.hasCtor && sig == "(string)" {
		return fakeMethod{name: "<init>", sig: sig}, true
	}
	return nil, false
}

type fakeInstance struct {
	class *fakeClass
}

type fakeModel struct {
	classes map[string]*fakeClass
	strings []string
}

func (m *fakeModel) FindClass(name string) (tern.Class, error) {
	if c, ok := m.classes[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown class %q", name)
}

func (m *fakeModel) AllocString(s string) (tern.Object, error) {
	m.strings = append(m.strings, s)
	return s, nil
}

func throwRuntime() (*tern.Runtime, *fakeModel) {
	model := &fakeModel{
		classes: map[string]*fakeClass{
			"java/lang/Error": {desc: "Ljava/lang/Error;", hasCtor: true},
			"java/lang/Bare":  {desc: "Ljava/lang/Bare;"},
		},
	}
	rt := tern.NewRuntime(tern.Config{StackSize: 64 * 1024})
	rt.Objects = model
	return rt, model
}

func TestThrowNewAttachesPending(t *testing.T) {
	rt, model := throwRuntime()
	attachOn(t, rt, func(th *Thread) {
		ThrowNew(rt, th, "java/lang/Error", "boom")

		ex, ok := th.PendingException().(*fakeInstance)
		if !ok {
			t.Fatalf("pending exception = %v, want fake instance", th.PendingException())
		}
		if ex.class.desc != "Ljava/lang/Error;" {
			t.Fatalf("wrong class %q", ex.class.desc)
		}
		if len(model.strings) != 1 || model.strings[0] != "boom" {
			t.Fatalf("message strings = %v", model.strings)
		}
	})
}

func TestThrowNewfTruncates(t *testing.T) {
	rt, model := throwRuntime()
	attachOn(t, rt, func(th *Thread) {
		long := strings.Repeat("x", 600)
		ThrowNewf(rt, th, "java/lang/Error", "%s", long)

		if th.PendingException() == nil {
			t.Fatal("no pending exception")
		}
		if len(model.strings) != 1 {
			t.Fatalf("message strings = %v", model.strings)
		}
		if got := len(model.strings[0]); got != maxExceptionMessage {
			t.Fatalf("message length = %d, want %d", got, maxExceptionMessage)
		}
	})
}

func TestThrowUnknownClass(t *testing.T) {
	rt, _ := throwRuntime()
	attachOn(t, rt, func(th *Thread) {
		expectFatal(t, "resolve class", func() {
			ThrowNew(rt, th, "java/lang/Nope", "boom")
		})
	})
}

func TestThrowMissingConstructor(t *testing.T) {
	rt, _ := throwRuntime()
	attachOn(t, rt, func(th *Thread) {
		expectFatal(t, "constructor", func() {
			ThrowNew(rt, th, "java/lang/Bare", "boom")
		})
	})
}

func TestThrowNilThread(t *testing.T) {
	rt, _ := throwRuntime()
	expectFatal(t, "nil thread", func() {
		ThrowNew(rt, nil, "java/lang/Error", "boom")
	})
}

func TestThrowWithoutObjectModel(t *testing.T) {
	rt := testRuntime()
	attachOn(t, rt, func(th *Thread) {
		expectFatal(t, "object model", func() {
			ThrowNew(rt, th, "java/lang/Error", "boom")
		})
	})
}
