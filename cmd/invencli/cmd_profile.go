package main

import (
	"fmt"

	"invencost/internal/dto"

	"github.com/spf13/cobra"
)

var (
	profileEmail    string
	profileNombre   string
	profileApellido string
	profileTelefono string
	profileBio      string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Muestra el perfil del usuario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := api.Profile(cmd.Context())
		if err != nil {
			return err
		}
		printProfile(p)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Actualiza el perfil; sólo cambian los campos indicados",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.UpdateProfileRequest
		if cmd.Flags().Changed("email") {
			req.Email = &profileEmail
		}
		if cmd.Flags().Changed("nombre") {
			req.FirstName = &profileNombre
		}
		if cmd.Flags().Changed("apellido") {
			req.LastName = &profileApellido
		}
		if cmd.Flags().Changed("telefono") {
			req.Phone = &profileTelefono
		}
		if cmd.Flags().Changed("bio") {
			req.Bio = &profileBio
		}

		p, err := api.UpdateProfile(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Println("Perfil actualizado")
		printProfile(p)
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Cambia la contraseña de la cuenta",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := readPassword("Contraseña actual: ")
		if err != nil {
			return err
		}
		next, err := readPassword("Contraseña nueva (mínimo 6 caracteres): ")
		if err != nil {
			return err
		}
		if err := api.ChangePassword(cmd.Context(), current, next); err != nil {
			return err
		}
		fmt.Println("Contraseña actualizada correctamente")
		return nil
	},
}

func printProfile(p *dto.ProfileResponse) {
	fmt.Printf("Usuario: %s (id %d)\n", p.Username, p.ID)
	fmt.Printf("Email:   %s\n", p.Email)
	if p.FirstName != nil || p.LastName != nil {
		fmt.Printf("Nombre:  %s %s\n", deref(p.FirstName), deref(p.LastName))
	}
	if p.Phone != nil {
		fmt.Printf("Teléfono: %s\n", *p.Phone)
	}
	if p.Bio != nil {
		fmt.Printf("Bio:     %s\n", *p.Bio)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "nuevo email")
	profileUpdateCmd.Flags().StringVar(&profileNombre, "nombre", "", "nombre")
	profileUpdateCmd.Flags().StringVar(&profileApellido, "apellido", "", "apellidos")
	profileUpdateCmd.Flags().StringVar(&profileTelefono, "telefono", "", "teléfono")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "biografía")

	profileCmd.AddCommand(profileUpdateCmd)
}
