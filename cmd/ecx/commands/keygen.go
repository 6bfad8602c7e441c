package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larkov/ecx/ecies"
	"github.com/larkov/ecx/memzero"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print it as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := ecies.GenerateKey(curve, rand.Reader)
			if err != nil {
				return err
			}
			priv := kp.Private.Bytes()
			fmt.Fprintf(cmd.OutOrStdout(), "private: %s\n", hex.EncodeToString(priv))
			fmt.Fprintf(cmd.OutOrStdout(), "public:  %s\n", hex.EncodeToString(kp.Public.Bytes()))
			memzero.Zero(priv)
			return nil
		},
	}
}
