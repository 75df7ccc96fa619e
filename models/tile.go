package models

// Tile MBTiles库中tiles表的一行，TileData是terrain-RGB编码的图片
type Tile struct {
	ZoomLevel  int64
	TileColumn int64
	TileRow    int64
	TileData   []byte
}

func (Tile) TableName() string {
	return "tiles"
}
