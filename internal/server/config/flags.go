package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      bearer token validity, hours
//	-o int      bcrypt cost factor
//	-q string   notification queue URL
//	-g string   queue region
//	-e string   queue base endpoint (e.g., "http://127.0.0.1:9324/")
//	-u string   queue access key
//	-p string   queue secret key
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The token
// validity flag is accepted as an integer in hours and then converted to a
// time.Duration.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-o", "-q", "-g", "-e", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token_validity_duration (in hours)")
	fs.IntVar(&config.BcryptCost, "o", config.BcryptCost, "bcrypt cost factor")

	fs.StringVar(&config.QueueURL, "q", config.QueueURL, "notification queue URL")
	fs.StringVar(&config.QueueRegion, "g", config.QueueRegion, "queue region")
	fs.StringVar(&config.QueueBaseEndpoint, "e", config.QueueBaseEndpoint, "queue base endpoint")
	fs.StringVar(&config.QueueAccessKey, "u", config.QueueAccessKey, "queue access key")
	fs.StringVar(&config.QueueSecretKey, "p", config.QueueSecretKey, "queue secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Hour
}
