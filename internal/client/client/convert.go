package client

import (
	"time"

	pb "github.com/dmitrijs2005/usersvc/internal/proto"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromPBSummary(s *pb.UserSummary) *models.UserSummary {
	if s == nil {
		return nil
	}
	return &models.UserSummary{ID: s.GetId(), Username: s.GetUsername(), Email: s.GetEmail()}
}

func fromPBProfile(p *pb.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}

	out := &models.UserProfile{
		ID:        p.GetId(),
		Username:  p.GetUsername(),
		Email:     p.GetEmail(),
		Roles:     make([]models.Role, 0, len(p.GetRoles())),
		CreatedAt: fromTimestamp(p.GetCreatedAt()),
		UpdatedAt: fromTimestamp(p.GetUpdatedAt()),
		Creator:   fromPBSummary(p.GetCreator()),
	}
	for _, r := range p.GetRoles() {
		out.Roles = append(out.Roles, models.Role(r))
	}
	if p.GetDeletedAt() != nil {
		deletedAt := p.GetDeletedAt().AsTime()
		out.DeletedAt = &deletedAt
	}
	for _, c := range p.GetCreatorOf() {
		out.CreatorOf = append(out.CreatorOf, models.CreatedUser{
			ID:        c.GetId(),
			Username:  c.GetUsername(),
			Email:     c.GetEmail(),
			CreatedAt: fromTimestamp(c.GetCreatedAt()),
			UpdatedAt: fromTimestamp(c.GetUpdatedAt()),
		})
	}
	return out
}

func fromPBList(l *pb.UserList) *models.UserList {
	out := &models.UserList{
		Meta: models.ListMeta{
			Total:    int(l.GetMeta().GetTotal()),
			Page:     int(l.GetMeta().GetPage()),
			LastPage: int(l.GetMeta().GetLastPage()),
		},
		Data: make([]*models.UserProfile, 0, len(l.GetData())),
	}
	for _, p := range l.GetData() {
		out.Data = append(out.Data, fromPBProfile(p))
	}
	return out
}

func toPBCreate(in models.NewUser) *pb.CreateUserRequest {
	req := &pb.CreateUserRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	}
	for _, r := range in.Roles {
		req.Roles = append(req.Roles, string(r))
	}
	if in.CreatedBy != nil {
		req.CreatedBy = *in.CreatedBy
	}
	return req
}

func toPBUpdate(id string, patch models.UserPatch) *pb.UpdateUserRequest {
	req := &pb.UpdateUserRequest{
		Id:       id,
		Username: patch.Username,
		Email:    patch.Email,
		Password: patch.Password,
	}
	if patch.Roles != nil {
		req.Roles = &pb.RoleList{Roles: make([]string, 0, len(patch.Roles))}
		for _, r := range patch.Roles {
			req.Roles.Roles = append(req.Roles.Roles, string(r))
		}
	}
	return req
}
