package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <usuario>",
	Short: "Inicia sesión en el servidor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Contraseña: ")
		if err != nil {
			return err
		}
		if err := api.Login(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Printf("Sesión iniciada como %s\n", args[0])
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <usuario> <email>",
	Short: "Crea una cuenta nueva",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Contraseña (mínimo 6 caracteres): ")
		if err != nil {
			return err
		}
		if err := api.Register(cmd.Context(), args[0], args[1], password); err != nil {
			return err
		}
		fmt.Printf("Cuenta creada. Sesión iniciada como %s\n", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cierra la sesión local",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Logout(); err != nil {
			return err
		}
		fmt.Println("Sesión cerrada")
		return nil
	},
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(0)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
