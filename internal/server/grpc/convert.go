package grpc

import (
	pb "github.com/dmitrijs2005/usersvc/internal/proto"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPBSummary(s *models.UserSummary) *pb.UserSummary {
	if s == nil {
		return nil
	}
	return &pb.UserSummary{Id: s.ID, Username: s.Username, Email: s.Email}
}

func toPBSummaries(users []models.UserSummary) []*pb.UserSummary {
	out := make([]*pb.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, toPBSummary(&users[i]))
	}
	return out
}

func toPBProfile(p *models.UserProfile) *pb.UserProfile {
	if p == nil {
		return nil
	}

	out := &pb.UserProfile{
		Id:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		Roles:     fromRoles(p.Roles),
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
		Creator:   toPBSummary(p.Creator),
	}
	if p.DeletedAt != nil {
		out.DeletedAt = timestamppb.New(*p.DeletedAt)
	}
	for _, c := range p.CreatorOf {
		out.CreatorOf = append(out.CreatorOf, &pb.CreatedUser{
			Id:        c.ID,
			Username:  c.Username,
			Email:     c.Email,
			CreatedAt: timestamppb.New(c.CreatedAt),
			UpdatedAt: timestamppb.New(c.UpdatedAt),
		})
	}
	return out
}

func toPBList(l *models.UserList) *pb.UserList {
	out := &pb.UserList{
		Data: make([]*pb.UserProfile, 0, len(l.Data)),
		Meta: &pb.ListMeta{
			Total:    int32(l.Meta.Total),
			Page:     int32(l.Meta.Page),
			LastPage: int32(l.Meta.LastPage),
		},
	}
	for _, p := range l.Data {
		out.Data = append(out.Data, toPBProfile(p))
	}
	return out
}

func toRoles(values []string) []models.Role {
	if values == nil {
		return nil
	}
	roles := make([]models.Role, len(values))
	for i, v := range values {
		roles[i] = models.Role(v)
	}
	return roles
}

func fromRoles(roles []models.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// patchRoles keeps an explicitly empty role list distinct from an unset one.
func patchRoles(l *pb.RoleList) []models.Role {
	if l == nil {
		return nil
	}
	roles := make([]models.Role, 0, len(l.Roles))
	for _, r := range l.Roles {
		roles = append(roles, models.Role(r))
	}
	return roles
}
