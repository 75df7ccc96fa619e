package Raster

import (
	"fmt"
	"image"
	"log"
	"math"
	"sync"

	"github.com/GrainArc/TerraSection/config"
	"github.com/GrainArc/TerraSection/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MBTilesSource 从terrain-RGB编码的MBTiles库取高程，
// 采样坐标是WGS84经纬度。瓦片解码结果按行列号缓存
type MBTilesSource struct {
	name    string
	db      *gorm.DB
	maxZoom int64

	mu    sync.Mutex
	cache map[[2]int64]image.Image
}

// OpenConfiguredDEM 打开配置指定的DEM瓦片库
func OpenConfiguredDEM() (*MBTilesSource, error) {
	return OpenMBTiles(config.Dem)
}

// OpenMBTiles 打开MBTiles文件并取最大层级
func OpenMBTiles(path string) (*MBTilesSource, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("%w: 打开MBTiles失败: %v", models.ErrSourceUnavailable, err)
	}

	var maxZoom int64
	db.Model(&models.Tile{}).Select("MAX(zoom_level)").Scan(&maxZoom)

	return &MBTilesSource{
		name:    path,
		db:      db,
		maxZoom: maxZoom,
		cache:   make(map[[2]int64]image.Image),
	}, nil
}

func (m *MBTilesSource) ID() string {
	return m.name
}

func (m *MBTilesSource) MaxZoom() int64 {
	return m.maxZoom
}

func (m *MBTilesSource) Close() error {
	if db, err := m.db.DB(); err == nil {
		return db.Close()
	}
	return nil
}

// Sample 按经纬度采样高程。瓦片缺失视为范围外
func (m *MBTilesSource) Sample(lon, lat float64) (float64, Status, error) {
	x, y := LonLatToTile(lon, lat, m.maxZoom)

	img, err := m.tileImage(x, y)
	if err != nil {
		return math.NaN(), OutOfExtent, err
	}
	if img == nil {
		return math.NaN(), OutOfExtent, nil
	}

	v, ok := elevationAtPixel(img, lon, lat, int(m.maxZoom), int(x), int(y))
	if !ok {
		return math.NaN(), OutOfExtent, nil
	}
	return v, Hit, nil
}

func (m *MBTilesSource) tileImage(x, y int64) (image.Image, error) {
	m.mu.Lock()
	if img, ok := m.cache[[2]int64{x, y}]; ok {
		m.mu.Unlock()
		return img, nil
	}
	m.mu.Unlock()

	var tile models.Tile
	result := m.db.Where("tile_column = ? AND tile_row = ? AND zoom_level = ?", x, y, m.maxZoom).First(&tile)
	if result.Error != nil || len(tile.TileData) == 0 {
		// 库中没有这块瓦片，缓存nil避免重复查询
		m.mu.Lock()
		m.cache[[2]int64{x, y}] = nil
		m.mu.Unlock()
		return nil, nil
	}

	img, format, err := DecodeTileImage(tile.TileData)
	if err != nil {
		log.Printf("瓦片(%d,%d)解码失败（格式：%s）：%v", x, y, format, err)
		return nil, fmt.Errorf("%w: %v", models.ErrSourceUnavailable, err)
	}

	m.mu.Lock()
	m.cache[[2]int64{x, y}] = img
	m.mu.Unlock()
	return img, nil
}
