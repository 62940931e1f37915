package game

import (
	"survivors-lab/internal/assets"
	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// sheetFiles names the image behind each sprite sheet.
var sheetFiles = map[world.SheetID]string{
	world.SheetBackground: "background.png",
	world.SheetPlayer:     "player.webp",
	world.SheetEnemy:      "enemy.webp",
	world.SheetGem:        "gem.png",
	world.SheetDigits:     "digits.png",
}

type AssetState struct {
	Img     *ebiten.Image
	Pending bool
	Err     error
}

type AssetManager struct {
	loader *assets.Loader
	items  map[world.SheetID]*AssetState
}

func NewAssetManager(loader *assets.Loader) *AssetManager {
	return &AssetManager{
		loader: loader,
		items:  map[world.SheetID]*AssetState{},
	}
}

// RequestSheets schedules every known sheet, looking in dirs in order.
func (am *AssetManager) RequestSheets(dirs ...string) {
	for id, name := range sheetFiles {
		am.Request(id, assets.Resolve(name, dirs...))
	}
}

// Request schedules a sheet load if not already loaded/pending.
func (am *AssetManager) Request(id world.SheetID, path string) {
	st := am.items[id]

	if st != nil && (st.Pending || st.Img != nil || st.Err != nil) {
		return
	}

	am.items[id] = &AssetState{Pending: true}

	select {
	case am.loader.Req <- assets.Request{Key: id.String(), Path: path}:
	default:
		// queue full: leave it retryable
		am.items[id].Pending = false
		logger_config.Warnf("[assets] request queue full for sheet=%s", id)
	}
}

// Poll drains loader results and converts decoded images into ebiten.Images.
// Call this from Game.Update (main thread).
func (am *AssetManager) Poll() {
	for {
		select {
		case r := <-am.loader.Res:
			id, ok := world.ParseSheetID(r.Key)
			if !ok {
				continue
			}
			st := am.items[id]
			if st == nil {
				st = &AssetState{}
				am.items[id] = st
			}

			st.Pending = false

			if r.Err != nil {
				st.Err = r.Err
				logger_config.Warnf("[assets] load failed sheet=%s err=%v, drawing shapes instead", id, r.Err)
				continue
			}

			// IMPORTANT: create ebiten.Image on main thread
			st.Img = ebiten.NewImageFromImage(r.Image)
			logger_config.Debugf("[assets] loaded sheet=%s", id)

		default:
			return
		}
	}
}

// Sheet returns the loaded image for id, or nil.
func (am *AssetManager) Sheet(id world.SheetID) *ebiten.Image {
	st := am.items[id]
	if st == nil {
		return nil
	}

	return st.Img
}

func (am *AssetManager) Status(id world.SheetID) (loaded bool, pending bool, err error) {
	st := am.items[id]

	if st == nil {
		return false, false, nil
	}
	return st.Img != nil, st.Pending, st.Err
}
