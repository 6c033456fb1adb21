// Package gui は Fyne によるファイルブラウザのウィンドウを提供します
package gui

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"FolderBrowser/internal/domain/model"
	"FolderBrowser/internal/infrastructure/filesystem"
	"FolderBrowser/internal/infrastructure/logging"
	"FolderBrowser/internal/infrastructure/storage"
	"FolderBrowser/internal/usecase/browser"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Default window size constants
const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 650
)

// Window はフォルダ一覧・お気に入り・検索結果を表示するメインウィンドウです
type Window struct {
	svc       *browser.Service
	validator filesystem.DirectoryValidator
	logger    logging.Logger
	win       fyne.Window

	mu        sync.Mutex
	current   string
	nodes     []model.FileNode
	selected  int
	favorites []model.Favorite
	results   []model.SearchResult

	pathLabel   *widget.Label
	status      *widget.Label
	searchEntry *widget.Entry
	folderList  *widget.List
	favList     *widget.List
	resultList  *widget.List
	tabs        *container.AppTabs
	folderTab   *container.TabItem
	resultTab   *container.TabItem
}

// NewWindow はウィンドウを組み立てます。表示は ShowAndRun で行います
func NewWindow(a fyne.App, svc *browser.Service, validator filesystem.DirectoryValidator, logger logging.Logger) *Window {
	w := &Window{
		svc:       svc,
		validator: validator,
		logger:    logger,
		win:       a.NewWindow("FolderBrowser"),
		selected:  -1,
	}
	w.build()
	w.win.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))
	return w
}

// ShowAndRun は home を開いた状態でウィンドウを表示し、イベントループを実行します
func (w *Window) ShowAndRun(home string) {
	w.loadFavorites()
	if home != "" {
		w.Navigate(home)
	}
	w.win.ShowAndRun()
}

func (w *Window) build() {
	w.pathLabel = widget.NewLabel("")
	w.pathLabel.Truncation = fyne.TextTruncateEllipsis
	w.status = widget.NewLabel("")

	w.searchEntry = widget.NewEntry()
	w.searchEntry.SetPlaceHolder("検索語を入力して Enter")
	w.searchEntry.OnSubmitted = func(term string) {
		go w.RunSearch(term)
	}

	w.folderList = widget.NewList(
		func() int {
			w.mu.Lock()
			defer w.mu.Unlock()
			return len(w.nodes)
		},
		newRow,
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			w.mu.Lock()
			node := w.nodes[id]
			fav := storage.Contains(w.favorites, model.Favorite{Name: node.Name, Path: node.Path})
			w.mu.Unlock()

			label := node.Name
			if fav {
				label = "★ " + label
			}
			setRow(obj, node.IsDirectory, label)
		},
	)
	w.folderList.OnSelected = w.onFolderSelected

	w.favList = widget.NewList(
		func() int {
			w.mu.Lock()
			defer w.mu.Unlock()
			return len(w.favorites)
		},
		newRow,
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			w.mu.Lock()
			fav := w.favorites[id]
			w.mu.Unlock()
			setRow(obj, true, fav.Name)
		},
	)
	w.favList.OnSelected = func(id widget.ListItemID) {
		w.mu.Lock()
		fav := w.favorites[id]
		w.mu.Unlock()
		w.favList.UnselectAll()
		w.Navigate(fav.Path)
	}

	w.resultList = widget.NewList(
		func() int {
			w.mu.Lock()
			defer w.mu.Unlock()
			return len(w.results)
		},
		newRow,
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			w.mu.Lock()
			r := w.results[id]
			w.mu.Unlock()
			setRow(obj, r.IsDirectory, fmt.Sprintf("%s  (%s)", r.Name, r.Path))
		},
	)
	w.resultList.OnSelected = w.onResultSelected

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(
			widget.NewButtonWithIcon("", theme.FolderOpenIcon(), w.browse),
			widget.NewButtonWithIcon("", theme.MoveUpIcon(), w.up),
			widget.NewButtonWithIcon("", theme.ContentAddIcon(), w.toggleSelectedFavorite),
			widget.NewButtonWithIcon("", theme.NavigateNextIcon(), w.openSelected),
		),
		container.NewHBox(widget.NewButtonWithIcon("", theme.SearchIcon(), func() {
			go w.RunSearch(w.searchEntry.Text)
		})),
		w.searchEntry,
	)

	w.folderTab = container.NewTabItem("フォルダ", container.NewBorder(w.pathLabel, nil, nil, nil, w.folderList))
	w.resultTab = container.NewTabItem("検索結果", w.resultList)
	w.tabs = container.NewAppTabs(w.folderTab, w.resultTab)

	split := container.NewHSplit(
		container.NewBorder(widget.NewLabel("お気に入り"), nil, nil, nil, w.favList),
		w.tabs,
	)
	split.Offset = 0.22

	w.win.SetContent(container.NewBorder(toolbar, w.status, nil, nil, split))
}

func newRow() fyne.CanvasObject {
	return container.NewHBox(widget.NewIcon(theme.FileIcon()), widget.NewLabel(""))
}

func setRow(obj fyne.CanvasObject, dir bool, text string) {
	row := obj.(*fyne.Container)
	icon := row.Objects[0].(*widget.Icon)
	if dir {
		icon.SetResource(theme.FolderIcon())
	} else {
		icon.SetResource(theme.FileIcon())
	}
	row.Objects[1].(*widget.Label).SetText(text)
}

// Navigate は path の一覧を表示します
func (w *Window) Navigate(path string) {
	nodes, err := w.svc.ListDirectory(context.Background(), path)
	if err != nil {
		w.showError(err)
		return
	}
	browser.SortNodes(nodes)

	w.mu.Lock()
	w.current = path
	w.nodes = nodes
	w.selected = -1
	w.mu.Unlock()

	w.pathLabel.SetText(path)
	w.status.SetText(fmt.Sprintf("%d 項目", len(nodes)))
	w.folderList.UnselectAll()
	w.folderList.Refresh()
	w.tabs.Select(w.folderTab)

	if len(nodes) == 0 {
		w.status.SetText("空のフォルダです")
	}
}

// RunSearch は現在のフォルダ以下を検索し、結果タブに表示します。
// 空の検索語はすべての要素に一致します
func (w *Window) RunSearch(term string) {
	w.mu.Lock()
	root := w.current
	w.mu.Unlock()
	if root == "" {
		w.status.SetText("検索するフォルダを開いてください")
		return
	}

	w.status.SetText(fmt.Sprintf("%q を検索中…", term))
	results, err := w.svc.Search(context.Background(), browser.SearchRequest{FolderPath: root, SearchTerm: term})
	if err != nil {
		w.status.SetText("")
		w.showError(err)
		return
	}

	w.mu.Lock()
	w.results = results
	w.mu.Unlock()

	w.status.SetText(fmt.Sprintf("%d 件見つかりました", len(results)))
	w.resultList.UnselectAll()
	w.resultList.Refresh()
	w.tabs.Select(w.resultTab)
}

func (w *Window) onFolderSelected(id widget.ListItemID) {
	w.mu.Lock()
	w.selected = id
	node := w.nodes[id]
	w.mu.Unlock()

	if node.IsDirectory {
		w.Navigate(node.Path)
		return
	}

	details, err := w.svc.Inspect(node.Path)
	if err != nil {
		w.showError(err)
		return
	}
	w.status.SetText(fmt.Sprintf("%s  %d bytes  %s", details.Name, details.Size, details.MIMEType))
}

func (w *Window) onResultSelected(id widget.ListItemID) {
	w.mu.Lock()
	r := w.results[id]
	w.mu.Unlock()

	target := r.Path
	if !r.IsDirectory {
		target = filepath.Dir(r.Path)
	}
	w.Navigate(target)
}

func (w *Window) browse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			w.showError(fmt.Errorf("フォルダ選択エラー: %w", err))
			return
		}
		if uri == nil {
			return
		}
		path := uri.Path()
		if err := w.validator.ValidateDirectoryPath(path); err != nil {
			w.showError(fmt.Errorf("フォルダが無効です: %w", err))
			return
		}
		w.Navigate(path)
	}, w.win)
}

func (w *Window) up() {
	w.mu.Lock()
	current := w.current
	w.mu.Unlock()

	parent := filepath.Dir(current)
	if current == "" || parent == current {
		return
	}
	w.Navigate(parent)
}

// selectedNode は一覧で選択中の要素を返します。未選択なら現在のフォルダです
func (w *Window) selectedNode() (model.FileNode, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selected >= 0 && w.selected < len(w.nodes) {
		return w.nodes[w.selected], true
	}
	if w.current == "" {
		return model.FileNode{}, false
	}
	return model.FileNode{Name: filepath.Base(w.current), Path: w.current, IsDirectory: true}, true
}

func (w *Window) toggleSelectedFavorite() {
	node, ok := w.selectedNode()
	if !ok {
		return
	}
	if _, err := w.svc.ToggleFavorite(model.Favorite{Name: node.Name, Path: node.Path}); err != nil {
		w.showError(err)
		return
	}
	w.loadFavorites()
	w.folderList.Refresh()
}

func (w *Window) openSelected() {
	node, ok := w.selectedNode()
	if !ok {
		return
	}
	if err := w.svc.OpenPath(node.Path); err != nil {
		w.showError(err)
	}
}

func (w *Window) loadFavorites() {
	favorites, err := w.svc.LoadFavorites()
	if err != nil {
		w.showError(err)
		return
	}
	w.mu.Lock()
	w.favorites = favorites
	w.mu.Unlock()
	w.favList.Refresh()
}

func (w *Window) showError(err error) {
	w.logger.Log("ERROR", "操作に失敗", err)
	dialog.ShowError(err, w.win)
}
