package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Role-scoped appointment listings are cached under this prefix. Every
// appointment mutation invalidates all of them, not just the affected
// parties': a booking changes what the admin, the doctor, the patient and the
// receptionist each see.
const appointmentViewPrefix = "appointments:view:"

const appointmentViewTTL = 5 * time.Minute

// AppointmentViewKey builds the cache key for one role's appointment listing,
// e.g. ("doctor", 12) or ("admin", 0).
func AppointmentViewKey(role string, userID uint) string {
	if userID == 0 {
		return appointmentViewPrefix + role
	}
	return fmt.Sprintf("%s%s:%d", appointmentViewPrefix, role, userID)
}

// GetJSON reads a cached value into dest, reporting whether the key was
// present.
func GetJSON(key string, dest interface{}) (bool, error) {
	if Client == nil {
		return false, nil
	}
	raw, err := Client.Get(Ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON caches a value under key for the view TTL.
func SetJSON(key string, value interface{}) error {
	if Client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, key, raw, appointmentViewTTL).Err()
}

// InvalidateAppointmentViews drops every cached role-scoped appointment
// listing. Fired after each mutating appointment operation. Cache trouble is
// logged, never surfaced: a stale view expires on its own within the TTL.
func InvalidateAppointmentViews() {
	if Client == nil {
		return
	}

	var cursor uint64
	for {
		keys, next, err := Client.Scan(Ctx, cursor, appointmentViewPrefix+"*", 100).Result()
		if err != nil {
			log.Printf("Failed to scan appointment view keys: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := Client.Del(Ctx, keys...).Err(); err != nil {
				log.Printf("Failed to invalidate appointment views: %v", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
