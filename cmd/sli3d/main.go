package main

import "github.com/huttarl/slitherlink3D/cmd"

func main() {
	cmd.Execute()
}
