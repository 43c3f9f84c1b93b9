package main

import "famtree/kin/cmd"

func main() {
	cmd.Execute()
}
