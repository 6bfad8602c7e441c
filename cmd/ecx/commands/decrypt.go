package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/larkov/ecx/ecies"
	"github.com/larkov/ecx/memzero"
)

func decryptCmd() *cobra.Command {
	var keyHex string

	cmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "Decrypt a base64 envelope from a file or stdin with a private key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBytes, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("decoding --key: %w", err)
			}
			defer memzero.Zero(keyBytes)

			priv, err := curve.NewScalar().SetBytes(keyBytes)
			if err != nil {
				return err
			}
			kp := &ecies.KeyPair{
				Private: priv,
				Public:  curve.NewPoint().ScalarMult(priv, curve.Generator()),
			}

			encoded, err := readInput(args)
			if err != nil {
				return err
			}
			envelope, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
			if err != nil {
				return fmt.Errorf("decoding envelope: %w", err)
			}

			plaintext, err := ecies.Decrypt(curve, kp, envelope)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(plaintext)
			return err
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "recipient private scalar, 32-byte hex")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
