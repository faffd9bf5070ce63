package ecs

import "reflect"

// typeOf 返回类型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 以泛型方式添加组件
//
//	ecs.AddComponent(em, id, &components.PositionComponent{X: 50, Y: 50})
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 以泛型方式获取组件，省去调用方的类型断言
//
//	timer, ok := ecs.GetComponent[*components.TimerComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetEntitiesWith1 查询拥有组件 T1 的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// First 返回第一个拥有组件 T 的实体及其组件
// 用于网格、计时器这类场景内唯一的部件
func First[T any](em *EntityManager) (EntityID, T, bool) {
	var zero T
	for _, id := range GetEntitiesWith1[T](em) {
		if comp, ok := GetComponent[T](em, id); ok {
			return id, comp, true
		}
	}
	return 0, zero, false
}
