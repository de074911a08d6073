// internal/config/config.go
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries every setting the exporter needs, resolved once at process
// start. Components receive it (or a sub-struct) explicitly and never read
// the environment themselves.
type Config struct {
	Spotify SpotifyConfig
	Storage StorageConfig
	Export  ExportConfig
	App     AppConfig
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	ReleasesURL  string
	Timeout      time.Duration
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type ExportConfig struct {
	ObjectKey      string
	LocalPath      string
	AllowPartial   bool
	KeepArtistless bool
}

type AppConfig struct {
	LogLevel string
}

func Load() Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set default values
	viper.SetDefault("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token")
	viper.SetDefault("SPOTIFY_RELEASES_URL", "https://api.spotify.com/v1/browse/new-releases")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("S3_ENDPOINT", "s3.amazonaws.com")
	viper.SetDefault("S3_USE_SSL", true)
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("EXPORT_OBJECT_KEY", "album_details.csv")
	viper.SetDefault("EXPORT_LOCAL_PATH", "")
	viper.SetDefault("EXPORT_ALLOW_PARTIAL", false)
	viper.SetDefault("EXPORT_KEEP_ARTISTLESS", false)
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	return Config{
		Spotify: SpotifyConfig{
			ClientID:     viper.GetString("CLIENT_ID"),
			ClientSecret: viper.GetString("CLIENT_SECRET"),
			TokenURL:     viper.GetString("SPOTIFY_TOKEN_URL"),
			ReleasesURL:  viper.GetString("SPOTIFY_RELEASES_URL"),
			Timeout:      time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("S3_ENDPOINT"),
			AccessKey: viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
			Bucket:    viper.GetString("AWS_BUCKET_NAME"),
			Region:    viper.GetString("AWS_REGION"),
			UseSSL:    viper.GetBool("S3_USE_SSL"),
		},
		Export: ExportConfig{
			ObjectKey:      viper.GetString("EXPORT_OBJECT_KEY"),
			LocalPath:      viper.GetString("EXPORT_LOCAL_PATH"),
			AllowPartial:   viper.GetBool("EXPORT_ALLOW_PARTIAL"),
			KeepArtistless: viper.GetBool("EXPORT_KEEP_ARTISTLESS"),
		},
		App: AppConfig{
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
	}
}
