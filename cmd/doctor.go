package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/finch-gen/finch/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that generated headers can be compiled on this machine",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking environment...")
		checkCompiler()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// checkCompiler verifies if a C compiler is available in the system PATH.
// finch itself does not need one, but the generated header is only useful
// to a project that can compile it.
func checkCompiler() {
	fmt.Print("Checking for C compiler... ")

	for _, name := range []string{"cc", "gcc", "clang", "cl.exe"} {
		if path, err := exec.LookPath(name); err == nil {
			fmt.Printf("Found %s (%s)\n", name, path)
			return
		}
	}

	fmt.Println("NOT FOUND")
	ui.PrintWarning("doctor", "No C compiler found. Generated headers cannot be compiled here.")
}
