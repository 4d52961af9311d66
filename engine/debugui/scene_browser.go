package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/we/engine"
)

type ObjectInfo struct {
	ID        engine.GameObjectID
	Name      string
	Behaviors []string
}

// SceneBrowser lists the objects of a scene in a sortable, filterable table.
type SceneBrowser struct {
	objects           []ObjectInfo
	lastCount         int
	sortColumn        int
	sortAscending     bool
	selected          engine.GameObjectID
	filterText        string
	maxObjectsPerPage int
	currentPage       int
}

func NewSceneBrowser(maxObjectsPerPage int) *SceneBrowser {
	return &SceneBrowser{
		lastCount:         -1,
		sortAscending:     true,
		maxObjectsPerPage: maxObjectsPerPage,
	}
}

// Selected returns the id of the selected object, or 0.
func (sb *SceneBrowser) Selected() engine.GameObjectID {
	return sb.selected
}

func (sb *SceneBrowser) Render(scene *engine.Scene) {
	if !imgui.BeginV("Scene Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sb.refresh(scene)

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	filtered := sb.filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Behaviors")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.sortColumn = int(spec.ColumnIndex())
			sb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sb.sort()
			filtered = sb.filtered()
			sortSpecs.SetSpecsDirty(false)
		}

		start, end := sb.pageBounds(len(filtered))
		for _, obj := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", obj.ID), sb.selected == obj.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.selected = obj.ID
			}

			imgui.TableNextColumn()
			imgui.Text(obj.Name)

			imgui.TableNextColumn()
			imgui.Text(strings.Join(obj.Behaviors, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > sb.maxObjectsPerPage {
		totalPages := (len(filtered) + sb.maxObjectsPerPage - 1) / sb.maxObjectsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", sb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d objects", len(filtered)))
	}

	imgui.End()
}

// refresh rebuilds the cached rows when the object count changed.
func (sb *SceneBrowser) refresh(scene *engine.Scene) {
	if sb.lastCount == scene.Len() && sb.objects != nil {
		return
	}
	sb.lastCount = scene.Len()

	sb.objects = make([]ObjectInfo, 0, scene.Len())
	for obj := range scene.GameObjects() {
		behaviors := make([]string, 0, len(obj.Behaviors()))
		for _, b := range obj.Behaviors() {
			behaviors = append(behaviors, behaviorName(b))
		}
		sb.objects = append(sb.objects, ObjectInfo{ID: obj.ID(), Name: obj.Name(), Behaviors: behaviors})
	}

	if sb.selected != 0 && scene.GameObject(sb.selected) == nil {
		sb.selected = 0
	}
	sb.sort()
}

func (sb *SceneBrowser) sort() {
	sort.SliceStable(sb.objects, func(i, j int) bool {
		a, b := sb.objects[i], sb.objects[j]
		var less bool

		switch sb.sortColumn {
		case 1:
			less = a.Name < b.Name
		case 2:
			less = len(a.Behaviors) < len(b.Behaviors)
		default:
			less = a.ID < b.ID
		}

		if !sb.sortAscending {
			return !less
		}
		return less
	})
}

func (sb *SceneBrowser) filtered() []ObjectInfo {
	if sb.filterText == "" {
		return sb.objects
	}

	filter := strings.ToLower(sb.filterText)
	out := make([]ObjectInfo, 0, len(sb.objects))
	for _, obj := range sb.objects {
		if strings.Contains(fmt.Sprintf("%d", obj.ID), filter) ||
			strings.Contains(strings.ToLower(obj.Name), filter) ||
			strings.Contains(strings.ToLower(strings.Join(obj.Behaviors, " ")), filter) {
			out = append(out, obj)
		}
	}
	return out
}

func (sb *SceneBrowser) pageBounds(total int) (int, int) {
	if sb.maxObjectsPerPage <= 0 {
		return 0, total
	}
	start := sb.currentPage * sb.maxObjectsPerPage
	if start > total {
		sb.currentPage = 0
		start = 0
	}
	end := min(start+sb.maxObjectsPerPage, total)
	return start, end
}

func behaviorName(b engine.Behavior) string {
	t := reflect.TypeOf(b)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
