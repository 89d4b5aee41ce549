package redis

import (
	"fmt"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
)

// Key prefix for all pixelwalk data
const keyPrefix = "pixelwalk"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// identityIndexKey returns the Redis key for the identity -> player_id index
func identityIndexKey(identity model.Identity) string {
	return fmt.Sprintf("%s:idx:identity:%s", keyPrefix, identity)
}

// playersOnMapIndexKey returns the Redis key for the SET of players on a map
func playersOnMapIndexKey(mapID model.MapID) string {
	return fmt.Sprintf("%s:idx:players_on_map:%s", keyPrefix, mapID)
}

// mapKey returns the Redis key for a Map
func mapKey(id model.MapID) string {
	return fmt.Sprintf("%s:map:%s", keyPrefix, id)
}

// mapNameIndexKey returns the Redis key for the name -> map_id index
func mapNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:map_name:%s", keyPrefix, name)
}

// allMapsIndexKey returns the Redis key for the SET of all map keys
func allMapsIndexKey() string {
	return fmt.Sprintf("%s:idx:maps", keyPrefix)
}

// threadKey returns the Redis key for a Thread
func threadKey(id model.ThreadID) string {
	return fmt.Sprintf("%s:thread:%s", keyPrefix, id)
}

// threadPairIndexKey returns the Redis key for the canonical pair -> thread_id index
func threadPairIndexKey(a, b model.Identity) string {
	return fmt.Sprintf("%s:idx:thread_pair:%s:%s", keyPrefix, a, b)
}

// threadsForIndexKey returns the Redis key for the SET of a participant's thread keys
func threadsForIndexKey(participant model.Identity) string {
	return fmt.Sprintf("%s:idx:threads_for:%s", keyPrefix, participant)
}

// accountKey returns the Redis key for an Account
func accountKey(identity model.Identity) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, identity)
}
