package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/we/engine"
)

type fieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// exportedFields returns the exported fields of struct type t, cached per type.
func exportedFields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				Name:      f.Name,
				Index:     i,
				IsPointer: f.Type.Kind() == reflect.Ptr,
			})
		}
	}

	fieldCache.Store(t, fields)
	return fields
}

// ObjectInspector shows the transform and behavior fields of one game object.
// Numeric, boolean and string fields are editable in place.
type ObjectInspector struct{}

func NewObjectInspector() *ObjectInspector {
	return &ObjectInspector{}
}

func (oi *ObjectInspector) Render(obj *engine.GameObject) {
	if !imgui.BeginV("Object Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if obj == nil {
		imgui.Text("No object selected")
		return
	}

	imgui.Text(fmt.Sprintf("Object: %s (%d)", obj.Name(), obj.ID()))
	imgui.Separator()

	if imgui.TreeNodeStr("Transform") {
		t := obj.Transform()
		oi.vec3("Position", (*[3]float32)(&t.Position))
		oi.vec3("Scale", (*[3]float32)(&t.Scale))
		imgui.Text(fmt.Sprintf("Rotation: w=%.3f x=%.3f y=%.3f z=%.3f", t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2]))
		imgui.TreePop()
	}

	for i, b := range obj.Behaviors() {
		if imgui.TreeNodeStr(fmt.Sprintf("%s##%d", behaviorName(b), i)) {
			val := reflect.ValueOf(b)
			if val.Kind() == reflect.Ptr {
				val = val.Elem()
			}
			oi.renderValue(val)
			imgui.TreePop()
		}
	}
}

func (oi *ObjectInspector) vec3(label string, v *[3]float32) {
	imgui.Text(label)
	for i, axis := range []string{"X", "Y", "Z"} {
		imgui.SetNextItemWidth(80)
		imgui.InputFloat(fmt.Sprintf("%s##%s", axis, label), &v[i])
		if i < 2 {
			imgui.SameLine()
		}
	}
}

func (oi *ObjectInspector) renderValue(val reflect.Value) {
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for _, field := range exportedFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		oi.renderField(field.Name, fieldVal)
	}
}

func (oi *ObjectInspector) renderField(name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(name, &v) {
			setField(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(name, &v) && v >= 0 {
			setField(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(name, &v) {
			setField(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			setField(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(name, "", &v, imgui.InputTextFlagsNone, nil) {
			setField(val, v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			oi.renderValue(val)
			imgui.TreePop()
		}

	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Interface, reflect.Func:
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Type()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

// setField assigns value to field if it is settable and of a compatible kind.
// It reports whether the assignment happened.
func setField(field reflect.Value, value any) bool {
	if !field.CanSet() {
		return false
	}

	switch v := value.(type) {
	case int64:
		if field.CanInt() && !field.OverflowInt(v) {
			field.SetInt(v)
			return true
		}
	case uint64:
		if field.CanUint() && !field.OverflowUint(v) {
			field.SetUint(v)
			return true
		}
	case float64:
		if field.CanFloat() {
			field.SetFloat(v)
			return true
		}
	case bool:
		if field.Kind() == reflect.Bool {
			field.SetBool(v)
			return true
		}
	case string:
		if field.Kind() == reflect.String {
			field.SetString(v)
			return true
		}
	}
	return false
}
