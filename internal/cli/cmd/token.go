package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Rashed1879/talk-trove-server/internal/auth"
	"github.com/spf13/cobra"
)

var tokenEmail string

// tokenCmd mints an access token locally, for poking guarded routes with
// curl without going through POST /jwt.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development access token",
	Long:  `Sign a one-hour access token for the given email using ACCESS_TOKEN_SECRET.`,
	Run: func(cmd *cobra.Command, args []string) {
		secret := os.Getenv("ACCESS_TOKEN_SECRET")
		if secret == "" {
			fmt.Println("Error: ACCESS_TOKEN_SECRET environment variable not set.")
			os.Exit(1)
		}

		jwtService := auth.NewJWTService(secret, time.Hour)
		token, err := jwtService.GenerateToken(tokenEmail)
		if err != nil {
			fmt.Printf("Error signing token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email to embed in the token")
	_ = tokenCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(tokenCmd)
}
