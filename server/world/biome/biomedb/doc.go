// Package biomedb stores the saved ids assigned to configured biomes of a
// world in a LevelDB database.
package biomedb
