// Command migration applies the SQL files under db/migrations to the
// Postgres instance named by DB_URL.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsDir = "db/migrations"

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage())
	}

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return errors.New("DB_URL must point at the target Postgres instance")
	}

	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dbURL)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("close migrator: source=%v db=%v", srcErr, dbErr)
		}
	}()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "up":
		return finish(m.Up(), "schema is up to date")
	case "down":
		steps, err := stepCount(rest)
		if err != nil {
			return err
		}
		return finish(m.Steps(-steps), fmt.Sprintf("rolled back %d migration(s)", steps))
	case "version":
		return printVersion(m)
	case "force":
		version, err := versionArg(rest, "force")
		if err != nil {
			return err
		}
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		log.Printf("version forced to %d", version)
		return nil
	case "goto":
		target, err := versionArg(rest, "goto")
		if err != nil {
			return err
		}
		return finish(m.Migrate(uint(target)), fmt.Sprintf("migrated to version %d", target))
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage())
	}
}

// finish normalizes the migrator's no-op signal: an already-current schema
// is a success, not an error.
func finish(err error, done string) error {
	switch {
	case err == nil:
		log.Print(done)
	case errors.Is(err, migrate.ErrNoChange):
		log.Print("nothing to do")
	default:
		return err
	}
	return nil
}

func printVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Print("no migrations applied yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	log.Printf("version %d (dirty=%t)", version, dirty)
	return nil
}

func stepCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("down takes a positive step count, got %q", args[0])
	}
	return steps, nil
}

func versionArg(args []string, cmd string) (uint64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%s takes a version argument", cmd)
	}
	version, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return version, nil
}

func migrationsDir() (string, error) {
	dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if dir == "" {
		dir = defaultMigrationsDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("migrations dir %s does not exist (set MIGRATIONS_DIR to override the default %s)", abs, defaultMigrationsDir)
	}
	return abs, nil
}

func usage() string {
	return strings.Join([]string{
		"usage: migration <command> [args]",
		"",
		"commands:",
		"  up              apply all pending migrations",
		"  down [n]        roll back n migrations (default 1)",
		"  version         print the current schema version",
		"  force <v>       mark the schema at version v without running SQL",
		"  goto <v>        migrate up or down to version v",
	}, "\n")
}
