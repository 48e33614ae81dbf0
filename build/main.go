package main

import (
	"os"
	"os/exec"

	"github.com/goyek/goyek/v2"
)

func gotask(a *goyek.A, args ...string) {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		a.Error(err)
	}
}

var vet = goyek.Define(goyek.Task{
	Name:  "vet",
	Usage: "Run go vet on all packages",
	Action: func(a *goyek.A) {
		gotask(a, "vet", "-tags", "unit,integration", "./...")
	},
})

var unit = goyek.Define(goyek.Task{
	Name:  "unit",
	Usage: "Run unit tests",
	Action: func(a *goyek.A) {
		gotask(a, "test", "-tags", "unit", "./...")
	},
})

var integration = goyek.Define(goyek.Task{
	Name:  "integration",
	Usage: "Run integration tests against a local git binary",
	Action: func(a *goyek.A) {
		gotask(a, "test", "-tags", "integration", "./...")
	},
})

var _ = goyek.Define(goyek.Task{
	Name:  "all",
	Usage: "Run vet, unit and integration tests",
	Deps:  goyek.Deps{vet, unit, integration},
})

func main() {
	goyek.Main(os.Args[1:])
}
