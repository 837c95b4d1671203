// Command sanctuary opens the garden in a window, renders scripted sessions
// to PNG and manages the gratitude journal.
package main

func main() {
	Execute()
}
