package helper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"RunCourse-App/internal/domain/model"
)

// PathToLineString PathPoint列をorb.LineStringに変換する（経度, 緯度の順）
func PathToLineString(path []model.PathPoint) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, orb.Point{p.Lng, p.Lat})
	}
	return ls
}

// LineStringToPath orb.LineStringをPathPoint列に変換する
func LineStringToPath(ls orb.LineString) []model.PathPoint {
	path := make([]model.PathPoint, 0, len(ls))
	for _, p := range ls {
		path = append(path, model.PathPoint{Lat: p.Lat(), Lng: p.Lon()})
	}
	return path
}

// PathDistanceMeters パス全体の道のりをメートルで返す
func PathDistanceMeters(path []model.PathPoint) float64 {
	if len(path) < 2 {
		return 0
	}
	ls := PathToLineString(path)
	var total float64
	for i := 1; i < len(ls); i++ {
		total += geo.Distance(ls[i-1], ls[i])
	}
	return total
}

// PathBound パスの境界ボックスを少し余裕を持たせて返す（約100m程度のパディング）
func PathBound(path []model.PathPoint) orb.Bound {
	ls := PathToLineString(path)
	bound := ls.Bound()
	return bound.Pad(0.001)
}
