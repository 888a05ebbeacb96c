package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret    string
	AuthMode     string // "open" (default) | "owner"
	OwnerName    string
	OwnerKeyHash string // bcrypt hash dari owner key, hanya dipakai mode owner
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AuthMode = GetEnv("LEDGER_AUTH_MODE", "open")
	OwnerName = GetEnv("OWNER_NAME")
	OwnerKeyHash = GetEnv("OWNER_KEY_HASH")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if AuthMode != "open" && AuthMode != "owner" {
		log.Printf("⚠️ LEDGER_AUTH_MODE tidak dikenal (%q), fallback ke open", AuthMode)
		AuthMode = "open"
	}
	if AuthMode == "owner" {
		if OwnerName == "" {
			log.Println("❌ Mode owner tapi OWNER_NAME belum diset!")
		}
		if OwnerKeyHash == "" {
			log.Println("❌ Mode owner tapi OWNER_KEY_HASH belum diset!")
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
