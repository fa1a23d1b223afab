// GuessLab is an educational password-guessing simulator. It only ever
// operates on synthetic digests it (or its user) generated locally and
// refuses anything that looks like a real credential hash.
package main

import "github.com/p1xelfault/guesslab/cmd"

func main() {
	cmd.Execute()
}
