// ABOUTME: Sine wave demo binary
// ABOUTME: Viper-configured tone generator played through tinyaudio
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/tinyaudio/tinyaudio-go/internal/version"
	"github.com/tinyaudio/tinyaudio-go/pkg/audio/output"
	"github.com/tinyaudio/tinyaudio-go/pkg/tinyaudio"
)

type config struct {
	Backend            string
	SampleRate         int
	ChannelCount       int
	ChannelSampleCount int
	Frequency          float64
	Duration           time.Duration
}

func main() {
	configPath := flag.String("c", "", "Path to config file (default searches ./tinyaudio.yaml)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("%s %s", version.Product, version.Version)

	backend, err := output.Lookup(cfg.Backend)
	if err != nil {
		log.Fatalf("Failed to select backend: %v", err)
	}

	params := tinyaudio.OutputDeviceParameters{
		ChannelCount:       cfg.ChannelCount,
		SampleRate:         cfg.SampleRate,
		ChannelSampleCount: cfg.ChannelSampleCount,
	}

	gen := &sineGenerator{
		frequency:  cfg.Frequency,
		sampleRate: float64(cfg.SampleRate),
		channels:   cfg.ChannelCount,
	}

	device, err := tinyaudio.OpenOutputDevice(params, gen.fill, tinyaudio.WithBackend(backend))
	if err != nil {
		log.Fatalf("Failed to open output device: %v", err)
	}
	defer device.Close()

	log.Printf("Playing %.0f Hz tone for %s (Ctrl+C to stop)", cfg.Frequency, cfg.Duration)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down", sig)
	case <-time.After(cfg.Duration):
	}

	if err := device.Close(); err != nil {
		log.Printf("Failed to close device: %v", err)
	}
}

// loadConfig merges defaults, an optional config file and TINYAUDIO_*
// environment variables.
func loadConfig(configPath string) (config, error) {
	v := viper.New()

	v.SetDefault("backend", "")
	v.SetDefault("sample_rate", 44100)
	v.SetDefault("channel_count", 2)
	v.SetDefault("channel_sample_count", 4410)
	v.SetDefault("frequency", 440.0)
	v.SetDefault("duration", "5s")

	v.SetEnvPrefix("TINYAUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("tinyaudio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return config{
		Backend:            v.GetString("backend"),
		SampleRate:         v.GetInt("sample_rate"),
		ChannelCount:       v.GetInt("channel_count"),
		ChannelSampleCount: v.GetInt("channel_sample_count"),
		Frequency:          v.GetFloat64("frequency"),
		Duration:           v.GetDuration("duration"),
	}, nil
}

// sineGenerator keeps the oscillator phase as explicit state owned by the
// callback for the duration of one invocation.
type sineGenerator struct {
	frequency  float64
	sampleRate float64
	channels   int
	phase      float64
}

func (g *sineGenerator) fill(buffer []float32) {
	for i := 0; i < len(buffer); i += g.channels {
		g.phase += g.frequency / g.sampleRate
		if g.phase >= 1 {
			g.phase -= 1
		}
		value := float32(math.Sin(2 * math.Pi * g.phase))
		for ch := 0; ch < g.channels; ch++ {
			buffer[i+ch] = value
		}
	}
}
