package skein_test

import (
	"fmt"

	"github.com/skeinlabs/skein"
)

// Types used in examples only.
type Notifier interface {
	Notify(msg string) string
}

type EmailNotifier struct {
	From string
}

func (n *EmailNotifier) Notify(msg string) string {
	return "email from " + n.From + ": " + msg
}

type Greeter struct {
	Salutation string
}

func (g *Greeter) Greet(name string) string {
	return g.Salutation + ", " + name
}

func ExampleNew() {
	c := skein.New()

	_ = c.RegisterType(skein.Descriptor{
		Name:   "EmailNotifier",
		Params: []skein.Param{skein.PrimitiveDefault("string", "noreply@example.com")},
		New: func(args []any) (any, error) {
			return &EmailNotifier{From: args[0].(string)}, nil
		},
	})
	c.Singleton("Notifier", "EmailNotifier")

	n, err := skein.ResolveAs[Notifier](c, "Notifier")
	if err != nil {
		panic(err)
	}

	fmt.Println(n.Notify("build finished"))
	// Output: email from noreply@example.com: build finished
}

func ExampleSkein_Singleton() {
	c := skein.New()
	_ = c.RegisterType(skein.Descriptor{
		Name: "EmailNotifier",
		New: func([]any) (any, error) {
			return &EmailNotifier{}, nil
		},
	})
	c.Singleton("Notifier", "EmailNotifier")

	first, _ := c.Get("Notifier")
	second, _ := c.Get("Notifier")
	fmt.Println(first == second)
	// Output: true
}

func ExampleSkein_Make() {
	c := skein.New()
	_ = c.RegisterType(skein.Descriptor{
		Name: "Greeter",
		New: func([]any) (any, error) {
			return &Greeter{Salutation: "hello"}, nil
		},
	})

	// Make self-binds described types; no Bind call is needed.
	first, _ := c.Make("Greeter")
	second, _ := c.Make("Greeter")
	fmt.Println(first == second)
	// Output: false
}

func ExampleNewFactory() {
	c := skein.New()
	c.Instance("Hostname", "db.internal")

	c.Bind("DSN", skein.NewFactory(func(args []any) (any, error) {
		return fmt.Sprintf("postgres://%s:5432", args[0]), nil
	}, skein.Dep("Hostname")))

	dsn, _ := c.Get("DSN")
	fmt.Println(dsn)
	// Output: postgres://db.internal:5432
}

func ExampleWithMethod() {
	c := skein.New()
	_ = c.RegisterType(skein.Descriptor{
		Name: "Greeter",
		New: func([]any) (any, error) {
			return &Greeter{Salutation: "hello"}, nil
		},
		Methods: map[string]skein.Method{
			"Greet": {
				Params: []skein.Param{skein.PrimitiveDefault("string", "world")},
				Call: func(recv any, args []any) (any, error) {
					return recv.(*Greeter).Greet(args[0].(string)), nil
				},
			},
		},
	})

	out, _ := c.Resolve("Greeter", skein.WithMethod("Greet"))
	fmt.Println(out)
	// Output: hello, world
}

func ExampleSkein_Verify() {
	c := skein.New()
	c.Bind("Cache", "RedisCache")

	fmt.Println(c.Verify())
	// Output: cannot resolve "RedisCache": no descriptor registered
}
