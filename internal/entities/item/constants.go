package item

// Rarity is the rarity string written to converted items
type Rarity string

// Rarity values
const (
	RarityCommon       Rarity = "common"
	RarityUncommon     Rarity = "uncommon"
	RarityRare         Rarity = "rare"
	RarityVeryRare     Rarity = "very rare"
	RarityLegendary    Rarity = "legendary"
	RarityArtifact     Rarity = "artifact"
	RarityVaries       Rarity = "varies"
	RarityUnknown      Rarity = "unknown"
	RarityUnknownMagic Rarity = "unknown (magic)"
)

// TypeCode is the short item type code
type TypeCode string

// Item type codes
const (
	TypePotion         TypeCode = "P"
	TypeRing           TypeCode = "RG"
	TypeRod            TypeCode = "RD"
	TypeWand           TypeCode = "WD"
	TypeAmmunition     TypeCode = "A"
	TypeMasterRune     TypeCode = "MR"
	TypeScroll         TypeCode = "SC"
	TypeMelee          TypeCode = "M"
	TypeRanged         TypeCode = "R"
	TypeLightArmor     TypeCode = "LA"
	TypeMediumArmor    TypeCode = "MA"
	TypeHeavyArmor     TypeCode = "HA"
	TypeShield         TypeCode = "S"
	TypeGenericVariant TypeCode = "GV"
)

// IsMagic reports whether an item of this type is magical on its own
func (t TypeCode) IsMagic() bool {
	switch t {
	case TypePotion, TypeRing, TypeRod, TypeWand, TypeScroll, TypeMasterRune:
		return true
	}
	return false
}

// Bucket is an abstract family of base items named by a tagline
type Bucket string

// Bucket tags
const (
	BucketWeapon      Bucket = "weapon"
	BucketMelee       Bucket = "melee"
	BucketRanged      Bucket = "ranged"
	BucketSword       Bucket = "sword"
	BucketAxe         Bucket = "axe"
	BucketBow         Bucket = "bow"
	BucketCrossbow    Bucket = "crossbow"
	BucketArmor       Bucket = "armor"
	BucketHeavyArmor  Bucket = "heavy armor"
	BucketMediumArmor Bucket = "medium armor"
	BucketLightArmor  Bucket = "light armor"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypeBaseItem = "base_item"
	EntityTypeClass    = "class"
)

// Field names shared by converted items and catalog entries
const (
	FieldName      = "name"
	FieldSource    = "source"
	FieldPage      = "page"
	FieldSRD       = "srd"
	FieldRarity    = "rarity"
	FieldReqAttune = "reqAttune"
	FieldType      = "type"
	FieldWondrous  = "wondrous"
	FieldStaff     = "staff"
	FieldTattoo    = "tattoo"
	FieldBaseItem  = "baseItem"
	FieldWeight    = "weight"
	FieldEntries   = "entries"
	FieldArmor     = "armor"
	FieldWeapon    = "weapon"
	FieldValue     = "value"
)
