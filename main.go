package main

import "github.com/mylesmegyesi/clojure.core/cmd"

func main() {
	cmd.Execute()
}
