package middleware

import "github.com/gin-gonic/gin"

// deviceIDKey is the key used to store the caller's device identifier in the
// Gin context. Using a custom type prevents collisions.
const deviceIDKey = contextKey("deviceID")

// deviceIDHeader is the optional header clients send to identify themselves
// across requests. Without it, analytics fall back to the client IP.
const deviceIDHeader = "X-Device-ID"

// DeviceIDMiddleware captures the caller's device identifier so analytics
// can attribute events without any authentication layer.
func DeviceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader(deviceIDHeader)
		if deviceID == "" {
			deviceID = c.ClientIP()
		}
		c.Set(string(deviceIDKey), deviceID)
		c.Next()
	}
}

// GetDeviceIDFromContext retrieves the device identifier from the Gin
// context. It returns the identifier and a boolean indicating if it was found.
func GetDeviceIDFromContext(c *gin.Context) (string, bool) {
	deviceIDVal, exists := c.Get(string(deviceIDKey))
	if !exists {
		return "", false
	}

	deviceID, ok := deviceIDVal.(string)
	if !ok || deviceID == "" {
		return "", false
	}

	return deviceID, true
}
