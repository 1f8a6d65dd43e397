// Command xdh-bench runs the RFC 7748 known-answer vectors for X25519
// and X448 and reports Diffie-Hellman throughput. It is the concrete
// realization of the library's "test vectors & benchmark" component,
// which the package itself treats as an external collaborator.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/klauspost/cpuid/v2"
	sha256simd "github.com/minio/sha256-simd"
	"github.com/rs/zerolog"
	"github.com/templexxx/xhex"
	"github.com/urfave/cli/v2"

	xdh "github.com/armfazh/x25519-x64"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := &cli.App{
		Name:  "xdh-bench",
		Usage: "RFC 7748 known-answer vectors and throughput benchmark for X25519/X448",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "loglevel",
				Usage: "debug, info, warn, or error",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := zerolog.ParseLevel(c.String("loglevel"))
			if err != nil {
				return fmt.Errorf("xdh-bench: %w", err)
			}
			log = log.Level(lvl)
			return nil
		},
		Commands: []*cli.Command{
			katCommand(),
			benchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("xdh-bench failed")
		os.Exit(1)
	}
}

func katCommand() *cli.Command {
	return &cli.Command{
		Name:  "kat",
		Usage: "run the embedded RFC 7748 known-answer vectors",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "long",
				Usage: "also run the 1,000,000-iteration ladder check (slow)",
			},
		},
		Action: func(c *cli.Context) error {
			logCPUFeatures()

			failed := 0
			for _, v := range x25519Vectors {
				if err := v.run(); err != nil {
					failed++
					log.Error().Str("vector", v.name).Err(err).Msg("x25519 vector FAILED")
				} else {
					log.Info().Str("vector", v.name).Msg("x25519 vector ok")
				}
			}
			for _, v := range x448Vectors {
				if err := v.run(); err != nil {
					failed++
					log.Error().Str("vector", v.name).Err(err).Msg("x448 vector FAILED")
				} else {
					log.Info().Str("vector", v.name).Msg("x448 vector ok")
				}
			}

			if err := runIterated25519(1, want25519At1); err != nil {
				failed++
				log.Error().Err(err).Msg("x25519 iterated(1) FAILED")
			} else {
				log.Info().Msg("x25519 iterated(1) ok")
			}
			if err := runIterated25519(1000, want25519At1000); err != nil {
				failed++
				log.Error().Err(err).Msg("x25519 iterated(1000) FAILED")
			} else {
				log.Info().Msg("x25519 iterated(1000) ok")
			}
			if err := runIterated448(1, want448At1); err != nil {
				failed++
				log.Error().Err(err).Msg("x448 iterated(1) FAILED")
			} else {
				log.Info().Msg("x448 iterated(1) ok")
			}
			if err := runIterated448(1000, want448At1000); err != nil {
				failed++
				log.Error().Err(err).Msg("x448 iterated(1000) FAILED")
			} else {
				log.Info().Msg("x448 iterated(1000) ok")
			}

			if c.Bool("long") {
				log.Info().Msg("running 1,000,000-iteration ladder checks, this takes a while")
				if err := runIterated25519(1000000, want25519At1M); err != nil {
					failed++
					log.Error().Err(err).Msg("x25519 iterated(1000000) FAILED")
				} else {
					log.Info().Msg("x25519 iterated(1000000) ok")
				}
				if err := runIterated448(1000000, want448At1M); err != nil {
					failed++
					log.Error().Err(err).Msg("x448 iterated(1000000) FAILED")
				} else {
					log.Info().Msg("x448 iterated(1000000) ok")
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d known-answer check(s) failed", failed)
			}
			log.Info().Msg("all known-answer checks passed")
			return nil
		},
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "measure randomized Diffie-Hellman throughput",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "seconds",
				Usage: "how long to run each curve's benchmark loop",
				Value: 2.0,
			},
			&cli.StringFlag{
				Name:  "curve",
				Usage: "x25519, x448, or both",
				Value: "both",
			},
		},
		Action: func(c *cli.Context) error {
			logCPUFeatures()

			dur := time.Duration(c.Float64("seconds") * float64(time.Second))
			switch c.String("curve") {
			case "x25519":
				benchX25519(dur)
			case "x448":
				benchX448(dur)
			case "both":
				benchX25519(dur)
				benchX448(dur)
			default:
				return fmt.Errorf("xdh-bench: unknown curve %q (want x25519, x448, or both)", c.String("curve"))
			}
			return nil
		},
	}
}

func logCPUFeatures() {
	log.Info().
		Str("brand", cpuid.CPU.BrandName).
		Bool("avx2", cpuid.CPU.Supports(cpuid.AVX2)).
		Bool("bmi2", cpuid.CPU.Supports(cpuid.BMI2)).
		Bool("adx", cpuid.CPU.Supports(cpuid.ADX)).
		Msg("host CPU features (informational only: this build is portable scalar Go)")
}

// benchX25519 and benchX448 feed the ladder arbitrary peer material: a
// random 32/56-byte string, then each iteration's output, not a validated
// peer public key. Per the spec's design notes, the ladder's cost does not
// depend on whether the u-coordinate is on-curve, so this is legitimate
// for speed measurement but must not be read as a correctness scenario.
func benchX25519(dur time.Duration) {
	var sk, peer, out [xdh.X25519Size]byte
	if _, err := readRandom(sk[:]); err != nil {
		log.Error().Err(err).Msg("x25519 bench: seeding scalar")
		return
	}
	if _, err := readRandom(peer[:]); err != nil {
		log.Error().Err(err).Msg("x25519 bench: seeding peer material")
		return
	}

	digest := sha256simd.New()
	start := time.Now()
	ops := 0
	for time.Since(start) < dur {
		if err := xdh.X25519Shared(out[:], sk[:], peer[:]); err != nil {
			log.Error().Err(err).Msg("x25519 bench: shared failed")
			return
		}
		digest.Write(out[:])
		copy(peer[:], out[:])
		ops++
	}
	elapsed := time.Since(start)
	report("x25519", ops, elapsed, digest.Sum(nil))
}

func benchX448(dur time.Duration) {
	var sk, peer, out [xdh.X448Size]byte
	if _, err := readRandom(sk[:]); err != nil {
		log.Error().Err(err).Msg("x448 bench: seeding scalar")
		return
	}
	if _, err := readRandom(peer[:]); err != nil {
		log.Error().Err(err).Msg("x448 bench: seeding peer material")
		return
	}

	digest := sha256simd.New()
	start := time.Now()
	ops := 0
	for time.Since(start) < dur {
		if err := xdh.X448Shared(out[:], sk[:], peer[:]); err != nil {
			log.Error().Err(err).Msg("x448 bench: shared failed")
			return
		}
		digest.Write(out[:])
		copy(peer[:], out[:])
		ops++
	}
	elapsed := time.Since(start)
	report("x448", ops, elapsed, digest.Sum(nil))
}

// report prints throughput and a cycles-per-op estimate. No cycle
// counter is wired on any host this binary targets, so that field
// always reads zero, per the spec's explicit allowance for hosts
// without one.
func report(curve string, ops int, elapsed time.Duration, digest []byte) {
	opsPerSec := float64(ops) / elapsed.Seconds()
	log.Info().
		Str("curve", curve).
		Int("ops", ops).
		Dur("elapsed", elapsed).
		Float64("ops_per_sec", opsPerSec).
		Int("cycles_per_op", 0).
		Str("digest", xhex.EncodeToString(digest)).
		Msg("bench result")
}
