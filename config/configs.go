package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var Samples int
var Thickness float64
var VExag float64
var Bands int
var Workers int
var Dem string
var MainConfig Config

type Config struct {
	XMLName   xml.Name `xml:"config"`
	Samples   int      `xml:"samples"`
	Thickness float64  `xml:"thickness"`
	VExag     float64  `xml:"vexag"`
	Bands     int      `xml:"bands"`
	Workers   int      `xml:"workers"`
	Dem       string   `xml:"dem"`
}

func init() {

	// 默认参数，config.xml存在时被覆盖
	MainConfig = Config{
		Samples:   200,
		Thickness: 20,
		VExag:     1.0,
		Bands:     4,
		Workers:   20,
	}

	xmlFile, err := os.Open("config.xml")
	if err == nil {
		defer xmlFile.Close()
		xmlDecoder := xml.NewDecoder(xmlFile)
		err = xmlDecoder.Decode(&MainConfig)
		if err != nil {
			fmt.Println("Error  decoding  XML:", err)
		}
	}

	Samples = MainConfig.Samples
	Thickness = MainConfig.Thickness
	VExag = MainConfig.VExag
	Bands = MainConfig.Bands
	Workers = MainConfig.Workers
	Dem = MainConfig.Dem

	if Samples < 2 {
		Samples = 200
	}
	if Workers <= 0 {
		Workers = 20
	}
	if VExag <= 0 {
		VExag = 1.0
	}
	if Bands <= 0 {
		Bands = 4
	}
}
