package commands

import (
	"github.com/spf13/cobra"

	"github.com/larkov/ecx/group"
	"github.com/larkov/ecx/secp256k1"
)

// curve is the group all commands operate on. The library is generic over
// [group.Group]; the CLI pins secp256k1.
var curve group.Group = &secp256k1.Curve{}

func Execute() error {
	root := &cobra.Command{
		Use:           "ecx",
		Short:         "Hybrid public-key encryption over secp256k1",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}
