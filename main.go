package main

import "github.com/thesixpathguy/VoiceWise-sub001/cmd"

func main() {
	cmd.Execute()
}
