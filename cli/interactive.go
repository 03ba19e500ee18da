package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// chooseStart is the quick pre-menu shown before the full screen dashboard
// takes over the terminal.
func chooseStart() (mainState, bool) {
	prompt := promptui.Select{
		Label: "Select Action",
		Items: []string{"Main Menu", "Settings", "Watch"},
	}

	_, result, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return showMenu, false
	}

	switch result {
	case "Settings":
		return showSettings, true
	case "Watch":
		return showWatch, true
	}
	return showMenu, true
}
