package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/feedforge/tweetscore/internal/output"
	"github.com/feedforge/tweetscore/internal/quota"
)

var signupPlan string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage your tweetscore account",
}

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to an existing account",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	signupCmd.Flags().StringVar(&signupPlan, "plan", quota.PlanFree,
		"Plan to sign up on (free, pack, unlimited)")
	accountCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(accountCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	switch signupPlan {
	case quota.PlanFree, quota.PlanPack, quota.PlanUnlimited:
	default:
		return fmt.Errorf("unknown plan %q (expected free, pack, or unlimited)", signupPlan)
	}

	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	password, err := promptPassword("Password (min 8 characters): ")
	if err != nil {
		return err
	}

	credits := 0
	if signupPlan == quota.PlanPack {
		credits = svc.cfg.PackCredits
	}
	user, err := svc.auth.SignUp(args[0], password, signupPlan, credits)
	if err != nil {
		return err
	}
	if _, err := svc.auth.SignIn(user.Email, password); err != nil {
		return err
	}

	fmt.Printf("%s Account created: %s (%s plan)\n",
		output.StyleSuccess.Render("✓"), user.Email, user.Plan)
	if user.Plan == quota.PlanPack {
		fmt.Printf("  %d analysis credits loaded.\n", user.Credits)
	}
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	user, err := svc.auth.SignIn(args[0], password)
	if err != nil {
		return err
	}
	fmt.Printf("%s Signed in as %s\n", output.StyleSuccess.Render("✓"), user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.auth.SignOut(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := svc.auth.Current()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(struct {
			Email   string `json:"email"`
			Plan    string `json:"plan"`
			Credits int    `json:"credits,omitempty"`
		}{user.Email, user.Plan, user.Credits})
	}

	fmt.Printf("Signed in as %s (%s plan)\n", user.Email, user.Plan)
	if user.Plan == quota.PlanPack {
		fmt.Printf("Credits remaining: %d\n", user.Credits)
	}
	return nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read so piped input still works.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
