package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	var (
		portFlag string
		dbFlag   string
	)
	flag.StringVar(&portFlag, "port", "", "Control plane port (overrides PORT environment variable)")
	flag.StringVar(&dbFlag, "db", "", "SQLite database path (overrides SQLITE_PATH environment variable)")
	flag.Parse()

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	if dbFlag != "" {
		err := os.Setenv("SQLITE_PATH", dbFlag)
		if err != nil {
			return fmt.Errorf("failed to set SQLITE_PATH environment variable: %w", err)
		}
	}
	return nil
}
