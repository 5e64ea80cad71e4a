package bridgeservice

// Schema is the wire schema shipped alongside serialized tile records.
// A consumer decodes records only when the producer's schema matches
// its own.
const Schema = `syntax = "proto3";

package bridgeservice;

// Band is one single-band grid of numeric cells.
message Band {
    int32 cols = 1;
    int32 rows = 2;
    double no_data = 3;
    repeated double cells = 4;
}

// TileMsg is a multi-band tile: co-registered bands in order.
message TileMsg {
    repeated Band bands = 1;
}

// Record pairs a tile key with its tile for transport. temporal marks
// whether instant is meaningful.
message Record {
    int32 col = 1;
    int32 row = 2;
    int64 instant = 3;
    bool temporal = 4;
    TileMsg tile = 5;
}
`
