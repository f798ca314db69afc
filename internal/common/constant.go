package common

// ShareParam is the query parameter that carries a share token.
const ShareParam = "data"

// RecordKey is the local-storage key of the current record. The suffix is the
// schema version; bump it when the stored shape changes incompatibly.
const RecordKey = "myOsDataV6"
