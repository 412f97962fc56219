// Command airfoil resamples and morphs airfoil coordinate files.
package main

import "honnef.co/go/airfoil/internal/cli"

func main() {
	cli.Execute()
}
