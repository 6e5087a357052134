package conf

// CollisionThreshold - Max number of collisions (records in a chain besides the first) allowed in a bucket.
// An insert that grows a chain past this length triggers a rehash into twice the capacity.
const CollisionThreshold int64 = 3

// GrowthFactor - Factor by which capacity is multiplied on rehash
const GrowthFactor int64 = 2

// MaxCapacity - Max number of buckets a record table may grow to
const MaxCapacity int64 = 1 << 30

// DefaultCapacity - Initial capacity used by the command when nothing else is configured
const DefaultCapacity int64 = 10

// NameDisplayWidth - Number of terminal cells a first or last name is bounded to when displayed
const NameDisplayWidth int = 20

// MaxScore - Upper (exclusive) bound of randomly generated scores
const MaxScore float64 = 4.0

// HashModulo - Name of the internal key modulo capacity hash algorithm
const HashModulo string = "modulo"

// HashXXHash - Name of the xxhash mixed hash algorithm
const HashXXHash string = "xxhash"
