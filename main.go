/*
Copyright © 2023 Glossopoeia
*/
package main

import "github.com/glossopoeia/pts/cmd"

func main() {
	cmd.Execute()
}
