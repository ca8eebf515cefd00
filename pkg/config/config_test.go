package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StorePostgres, cfg.App.Store)
	assert.Equal(t, 50, cfg.Inventory.LowStockThreshold)
	assert.Empty(t, cfg.Inventory.PharmacyTables)
	assert.True(t, cfg.Sales.StrictSubtotal)
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 25, cfg.DB.MaxConns)
}

func TestFromViper_Valores(t *testing.T) {
	v := viper.New()
	v.Set("APP_STORE", "Memory")
	v.Set("INVENTORY_LOW_STOCK_THRESHOLD", "30")
	v.Set("INVENTORY_PHARMACY_TABLES", "farmacia_centro, farmacia_norte,,")
	v.Set("SALES_STRICT_SUBTOTAL", "false")
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.App.Store)
	assert.Equal(t, 30, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, []string{"farmacia_centro", "farmacia_norte"}, cfg.Inventory.PharmacyTables)
	assert.False(t, cfg.Sales.StrictSubtotal)
	assert.True(t, cfg.JWT.Enabled())
}

func TestFromViper_StoreInvalido(t *testing.T) {
	v := viper.New()
	v.Set("APP_STORE", "redis")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_UmbralInvalido(t *testing.T) {
	v := viper.New()
	v.Set("INVENTORY_LOW_STOCK_THRESHOLD", "0")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "bodega", Password: "p@ss:word", DBName: "bodega", SSLMode: "disable"}
	assert.Equal(t, "postgres://bodega:p%40ss%3Aword@db:5432/bodega?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
