package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/larkov/ecx/ecies"
)

func encryptCmd() *cobra.Command {
	var pubHex string

	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt a file or stdin to a public key, printing a base64 envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := hex.DecodeString(pubHex)
			if err != nil {
				return fmt.Errorf("decoding --pub: %w", err)
			}
			pub, err := curve.NewPoint().SetBytes(pubBytes)
			if err != nil {
				return err
			}

			message, err := readInput(args)
			if err != nil {
				return err
			}
			envelope, err := ecies.Encrypt(curve, pub, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(envelope))
			return nil
		},
	}

	cmd.Flags().StringVar(&pubHex, "pub", "", "recipient public point, 33-byte compressed hex")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
