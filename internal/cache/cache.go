package cache

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// NewRedisClient arma el cliente para la cache de lectura. Si no hay
// redis configurado o no responde, devuelve nil y la cache queda
// deshabilitada sin afectar al resto de la API.
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware cachea respuestas GET 200 por ttl, con clave ruta+query.
// Solo aplica a lecturas de disponibilidad y reportes: una lectura algo
// vieja se tolera porque la revalidación al crear la reserva es la que
// manda. Las escrituras nunca pasan por acá.
func Middleware(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := "cache:" + c.Request.URL.Path + "?" + c.Request.URL.RawQuery

		if body, err := client.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if w.Status() == http.StatusOK && w.buf.Len() > 0 {
			client.Set(c.Request.Context(), key, w.buf.Bytes(), ttl)
		}
	}
}
